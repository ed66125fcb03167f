// Package search implements content search over Drive documents.
//
// The pipeline has four stages: a candidate query against Drive's full-text
// index, per-document text extraction dispatched by format kind (Google Doc
// export, PDF, DOCX, plain text), a literal-or-regex match scan producing
// position spans, and snippet construction around each span. Candidates are
// processed sequentially and extraction failures are isolated per document.
package search
