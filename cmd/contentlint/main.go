package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/krishnaa-0506/always/internal/content"
)

// contentlint validates an authored content directory before deployment:
// every set must parse, have a sane shape, and reference only recognized
// placeholder tokens.

var tokenPattern = regexp.MustCompile(`\{\{([a-zA-Z]+)\}\}`)

func main() {
	dir := flag.String("dir", "./data/content", "content directory to lint")
	flag.Parse()

	source := content.NewFSSource(*dir)
	keys, err := source.Keys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list content sets: %v\n", err)
		os.Exit(1)
	}
	if len(keys) == 0 {
		fmt.Fprintf(os.Stderr, "no content sets found in %s\n", *dir)
		os.Exit(1)
	}

	ctx := context.Background()
	problems := 0
	for _, key := range keys {
		set, err := source.Load(ctx, key)
		if err != nil {
			fmt.Printf("%s: failed to load: %v\n", key, err)
			problems++
			continue
		}

		for _, issue := range set.ShapeIssues() {
			fmt.Printf("%s: %s\n", key, issue)
			problems++
		}

		for vi, variation := range set.Variations {
			for si, screen := range variation.Screens {
				for _, line := range screen.Lines {
					for _, match := range tokenPattern.FindAllStringSubmatch(line, -1) {
						if !content.KnownToken(match[1]) {
							fmt.Printf("%s: variation %d screen %d: unknown token %s\n", key, vi, si, match[0])
							problems++
						}
					}
				}
			}
		}
	}

	if problems > 0 {
		fmt.Printf("%d problem(s) across %d set(s)\n", problems, len(keys))
		os.Exit(1)
	}
	fmt.Printf("%d set(s) OK\n", len(keys))
}
