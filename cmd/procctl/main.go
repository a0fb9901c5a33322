package main

import (
	"fmt"
	"os"

	"google.golang.org/grpc/codes"
)

func main() {
	root := NewRootCmd()

	if err := root.Execute(); err != nil {
		if code := grpcCode(err); code != codes.Unknown {
			fmt.Fprintf(os.Stderr, "%s: %v\n", code, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
