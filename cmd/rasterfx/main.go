// Command rasterfx blurs, sharpens, resizes and crops image files.
//
// Usage:
//
//	rasterfx blur --level 3 --repeat in.png out.png
//	rasterfx resize --width 800 in.jpg out.jpg
//	rasterfx shrink --max-side 1024 in.jpg out.jpg
//	rasterfx batch --max-side 512 --out-dir thumbs *.jpg
//	rasterfx kernel gaussian --radius 2
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
