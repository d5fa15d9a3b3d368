package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"huffman_compression_go/pkg/archiveclient"
	"huffman_compression_go/pkg/huffman"
)

func main() {
	strategy := flag.String("strategy", "tree", "framing strategy: tree, table or depth")
	width := flag.Uint("width", 21, "symbol width in bits: 8, 16 or 21")
	server := flag.String("server", "", "archive server base URL; empty means local only")
	flag.Parse()

	if err := run(*strategy, *width, *server, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(strategyName string, width uint, server string, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	if server != "" {
		return runRemote(server, text)
	}

	s, err := huffman.ParseStrategy(strategyName)
	if err != nil {
		return err
	}
	opts := huffman.Options{Strategy: s, SymbolWidth: width, Tagged: true}
	packed, st, err := huffman.Compress(text, opts)
	if err != nil {
		return err
	}
	back, err := huffman.Decompress(packed, huffman.Options{Tagged: true})
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if back != text {
		return fmt.Errorf("verify: round trip mismatch")
	}

	fmt.Printf("strategy=%s width=%d\n", opts.Strategy, opts.SymbolWidth)
	fmt.Printf("symbols=%d distinct=%d max_depth=%d\n", st.Symbols, st.Distinct, st.MaxDepth)
	fmt.Printf("framing=%d payload=%d total=%d bits (%d bytes packed, ratio %.3f)\n",
		st.FramingBits, st.PayloadBits, st.TotalBits, len(packed), st.Ratio())
	return nil
}

// 서버에 저장하고 다시 읽어서 비교해요. 전략과 폭은 서버 설정을 따라요.
func runRemote(server, text string) error {
	ctx := context.Background()
	c := archiveclient.New(server)
	a, err := c.CreateArchive(ctx, text)
	if err != nil {
		return err
	}
	back, err := c.GetArchiveText(ctx, a.ID)
	if err != nil {
		return err
	}
	if back != text {
		return fmt.Errorf("archive %s: round trip mismatch", a.ID)
	}
	fmt.Printf("archive=%s strategy=%s width=%d symbols=%d bits=%d\n",
		a.ID, a.Strategy, a.SymbolWidth, a.Symbols, a.BitLength)
	return nil
}

func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
