package main

import (
	"context"

	"github.com/bjulian5/changelog/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
