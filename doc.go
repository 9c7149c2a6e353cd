// Package storybook generates synchronized UI artifacts from a Figma
// document: for every component in the file it emits a JSX template, a SCSS
// style sheet, and a Storybook stories entry, plus a shared design-token
// file and the exported binary image assets the components reference.
//
// The CLI lives in cmd/storybook; this root package exposes the same
// pipeline as a Go API so that callers can embed generation in their own
// tools without shelling out.
//
// # Quick start
//
//	result, err := storybook.Run(storybook.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	    OutDir:      "storybook-out",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Components)
//
// # Referential consistency
//
// Each component subtree is annotated exactly once — classification, style
// extraction, and identifier assignment happen in pkg/graph — and the three
// emitters render from that one immutable structure. A class name defined in
// the style sheet is therefore exactly the class name written into the
// template's markup, and a text node's positional prop name ("text1",
// "text2", ...) is the same in the template and the stories file.
//
// # Idempotent output
//
// All files go through pkg/writer, which skips byte-identical writes.
// Running the generator twice against an unchanged document produces zero
// writes the second time, so file timestamps and downstream build caches
// stay stable.
//
// # Partial failure
//
// Missing credentials and a failed document fetch abort the run. Everything
// else degrades: a failed asset batch or download logs a warning and the
// affected nodes render as plain placeholder boxes; an unreachable styles
// endpoint yields a token file without the published-style inventory.
package storybook
