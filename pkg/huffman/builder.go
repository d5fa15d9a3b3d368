package huffman

import (
	"slices"
	"sort"
)

type SymbolCount struct {
	Symbol rune
	Count  int
}

// CountSymbols는 입력을 한 번 훑어 심볼별 빈도를 세요.
// 결과는 처음 등장한 순서를 유지해요 (트리 모양이 매번 같도록).
func CountSymbols(input []rune) []SymbolCount {
	index := make(map[rune]int)
	counts := make([]SymbolCount, 0)
	for _, r := range input {
		if i, ok := index[r]; ok {
			counts[i].Count++
			continue
		}
		index[r] = len(counts)
		counts = append(counts, SymbolCount{Symbol: r, Count: 1})
	}
	return counts
}

// BuildTree는 빈도 목록으로 허프만 트리를 만들어요.
//
// 작업 목록은 가중치 내림차순으로 유지되고 꼬리가 가장 가벼운 노드예요.
// 꼬리 두 개를 꺼내 Branch{먼저 꺼낸 것, 나중 것}로 합친 뒤 정렬 위치에 다시 넣어요.
// 같은 가중치가 있으면 새 Branch는 그 앞에 들어가요 (= 더 늦게 합쳐짐).
// 서로 다른 심볼이 하나뿐이면 Leaf 하나가 루트이고, 비어 있으면 nil이에요.
func BuildTree(counts []SymbolCount) Node {
	if len(counts) == 0 {
		return nil
	}

	nodes := make([]Node, 0, len(counts))
	for _, c := range counts {
		nodes = append(nodes, Leaf{Symbol: c.Symbol, Count: c.Count})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Weight() > nodes[j].Weight()
	})

	for len(nodes) > 1 {
		first := nodes[len(nodes)-1]
		second := nodes[len(nodes)-2]
		nodes = nodes[:len(nodes)-2]

		merged := NewBranch(first, second)
		w := merged.Weight()
		pos := sort.Search(len(nodes), func(i int) bool { return nodes[i].Weight() <= w })
		nodes = slices.Insert(nodes, pos, Node(merged))
	}
	return nodes[0]
}

// AssignCodes는 트리를 깊이 우선으로 훑으며 왼쪽=false, 오른쪽=true 경로를 코드로 기록해요.
func AssignCodes(root Node) *CodeTable {
	t := &CodeTable{codes: make(map[rune]Code)}
	var walk func(n Node, path Code)
	walk = func(n Node, path Code) {
		switch n := n.(type) {
		case *Branch:
			walk(n.Left, path.extend(false))
			walk(n.Right, path.extend(true))
		case Leaf:
			t.codes[n.Symbol] = path
			t.order = append(t.order, n.Symbol)
			if len(path) > t.maxDepth {
				t.maxDepth = len(path)
			}
		}
	}
	if root != nil {
		walk(root, Code{})
	}
	return t
}
