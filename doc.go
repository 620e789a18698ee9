// Package mdpdf translates a constrained Markdown subset into an ordered
// sequence of layout blocks for PDF rendering.
//
// The translator makes a single forward pass over the source lines. Each
// trimmed line is classified (blank, heading, image, rule, list item or
// paragraph) and turned into blocks: titles and headings, body paragraphs
// with bold and italic spans, bullet items, images with captions, rules and
// spacers. Every block carries its fully resolved style so the renderer needs
// no Markdown knowledge.
//
// Supported syntax:
//   - "# " to "#### " headings (title, subtitle, heading, subheading)
//   - "- " and "* " bullet items, one level
//   - "![alt](path)" on a line of its own
//   - lines starting with "---" as horizontal rules
//   - **bold** and *italic* inline emphasis
//
// Example:
//
//	doc, err := mdpdf.TranslateFile("notes.md", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, b := range doc.Blocks {
//		fmt.Println(b.Kind, b.Text)
//	}
//
// Rendering lives in package pkt.systems/mdpdf/pdf.
package mdpdf
