package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// runSearch performs one relay call with the configured provider and writes
// the result as indented JSON
func runSearch(ctx context.Context, query string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.search.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
