// Package huffman은 빈도 기반 허프만 트리로 문자열을 비트 스트림에 압축하고 다시 풀어요.
//
// 인코딩: 빈도 집계 → 트리 구성 → 코드 할당 → 프레이밍 기록 → 페이로드 기록.
// 디코딩: 프레이밍에서 코드표 복원 → 비트 하나씩 읽으며 심볼 매칭.
package huffman

/*** ---------- 트리 노드 (Leaf | Branch) ---------- ***/

// Node는 Leaf 또는 *Branch 둘 중 하나예요. 다른 구현은 없어요.
type Node interface {
	Weight() int
	node()
}

type Leaf struct {
	Symbol rune
	Count  int
}

// Branch는 두 자식을 독점 소유해요. weight = Left.Weight() + Right.Weight().
type Branch struct {
	Left, Right Node
	weight      int
}

func NewBranch(left, right Node) *Branch {
	return &Branch{Left: left, Right: right, weight: left.Weight() + right.Weight()}
}

func (l Leaf) Weight() int    { return l.Count }
func (b *Branch) Weight() int { return b.weight }

func (Leaf) node()    {}
func (*Branch) node() {}

type TreeStats struct {
	Leaves   int
	Branches int
	Depth    int // 가장 깊은 Leaf의 깊이 (루트만 있으면 0)
}

// Shape은 트리를 한 번 훑어 노드 개수와 깊이를 세요.
func Shape(root Node) TreeStats {
	var st TreeStats
	var walk func(n Node, depth int)
	walk = func(n Node, depth int) {
		switch n := n.(type) {
		case *Branch:
			st.Branches++
			walk(n.Left, depth+1)
			walk(n.Right, depth+1)
		case Leaf:
			st.Leaves++
			if depth > st.Depth {
				st.Depth = depth
			}
		}
	}
	if root != nil {
		walk(root, 0)
	}
	return st
}
