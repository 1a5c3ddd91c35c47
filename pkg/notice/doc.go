// Package notice turns license records into a text document using a flat
// token template.
//
// A template file is split into header, body and footer by line counts
// ([Split]). Records are filtered by name and license patterns ([Matcher]),
// sorted, and the body is rendered once per record by replacing the
// placeholders {name}, {version}, {authors}, {repository}, {license},
// {license_file} and {description} ([RenderRecord]). [Assemble] glues the
// pieces together:
//
//	header "\n" body₁ "\n" body₂ ... "\n" footer
//
// The header and its newline are omitted when the header is empty.
package notice
