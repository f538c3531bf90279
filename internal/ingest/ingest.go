// Package ingest extracts plain text from job-ad documents.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/ledongthuc/pdf"
)

// Format is a supported document type.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// Document is an extracted job ad.
type Document struct {
	Name   string
	Format Format
	Text   string
}

// FormatFor maps a file name to its format by extension.
func FormatFor(name string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case "", ".txt", ".text", ".md":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", errors.NewInputError(fmt.Sprintf("unsupported file type: %s", ext), nil)
	}
}

// ReadFile extracts the text of path. StdinName reads plain text from stdin.
func ReadFile(path string) (*Document, error) {
	if path == StdinName {
		return ReadText("stdin", os.Stdin)
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInputError("read file", err)
	}
	return Parse(filepath.Base(path), format, raw)
}

// ReadText consumes r as plain text.
func ReadText(name string, r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewInputError("read input", err)
	}
	return Parse(name, FormatText, raw)
}

// Parse extracts text from raw bytes of the given format.
func Parse(name string, format Format, raw []byte) (*Document, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatText:
		text = string(raw)
		if !utf8.ValidString(text) {
			text = strings.ToValidUTF8(text, " ")
		}
	case FormatPDF:
		text, err = parsePDF(raw)
	case FormatDOCX:
		text, err = parseDOCX(raw)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("cannot extract text from %s", name), err)
	}

	return &Document{
		Name:   name,
		Format: format,
		Text:   NormalizeWhitespace(text),
	}, nil
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			body = f
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}

	rc, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var b strings.Builder
	inText := false
	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("decode document.xml: %w", tokenErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteString("\n")
				}
			case "tab", "br":
				b.WriteString(" ")
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(raw []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}

// NormalizeWhitespace collapses runs of blanks within lines and drops empty lines.
func NormalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
