// Package pdf renders translated Markdown documents to PDF.
//
// Render paginates an mdpdf.Document onto fixed-size pages and writes the
// result to an io.Writer. ConvertFile wraps translation and rendering for
// the common file-to-file case and writes the output atomically.
//
// Example:
//
//	res, err := pdf.ConvertFile(pdf.ConvertRequest{
//		Source: "masterclass.md",
//		Output: "masterclass.pdf",
//		Config: pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Output, res.Pages)
//
// Core Helvetica is used unless RegularFont, BoldFont and ItalicFont name
// TrueType files in one directory. Core fonts only cover Windows-1252.
package pdf
