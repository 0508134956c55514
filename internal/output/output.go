// Package output routes rendered content to stdout, files, or the clipboard
// and serializes structured results into the supported wire formats.
package output

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/temirov/devtul/internal/utils"
)

const (
	// EncodingUTF8 is the default output encoding.
	EncodingUTF8 = "utf8"
	// EncodingASCII drops characters outside the 7-bit range.
	EncodingASCII = "ascii"
	// EncodingUTF16 writes little-endian UTF-16 with a byte order mark.
	EncodingUTF16 = "utf16"
	// EncodingLatin1 writes ISO 8859-1.
	EncodingLatin1 = "latin1"

	unsupportedEncodingFormat = "invalid encoding %q (supported: utf8, ascii, utf16, latin1)"
	fileWriteFailedFormat     = "write output to %s: %w"
	outputWrittenFormat       = "Output written to: %s\n"

	outputFilePermissions = 0o644
)

// SupportedEncodings lists the accepted values of the --encoding flag.
var SupportedEncodings = []string{EncodingUTF8, EncodingASCII, EncodingUTF16, EncodingLatin1}

// ValidateEncoding reports whether the encoding name is one of the supported
// choices. An unknown name is a user error.
func ValidateEncoding(encodingName string) error {
	if utils.ContainsString(SupportedEncodings, encodingName) {
		return nil
	}
	return fmt.Errorf(unsupportedEncodingFormat, encodingName)
}

// EncodeContent converts UTF-8 content into the requested encoding.
func EncodeContent(content string, encodingName string) ([]byte, error) {
	switch encodingName {
	case EncodingUTF8, "":
		return []byte(content), nil
	case EncodingASCII:
		return encodeASCII(content), nil
	case EncodingUTF16:
		return encodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), content)
	case EncodingLatin1:
		return encodeWith(charmap.ISO8859_1, content)
	default:
		return nil, fmt.Errorf(unsupportedEncodingFormat, encodingName)
	}
}

func encodeWith(targetEncoding encoding.Encoding, content string) ([]byte, error) {
	encoder := targetEncoding.NewEncoder()
	encoded, encodeError := encoder.Bytes([]byte(content))
	if encodeError != nil {
		// Unmappable characters are dropped rather than failing the
		// whole write, matching the lossy text-export behavior.
		replacingEncoder := encoding.ReplaceUnsupported(targetEncoding.NewEncoder())
		return replacingEncoder.Bytes([]byte(content))
	}
	return encoded, nil
}

func encodeASCII(content string) []byte {
	asciiBytes := make([]byte, 0, len(content))
	for _, character := range content {
		if character < 128 {
			asciiBytes = append(asciiBytes, byte(character))
		}
	}
	return asciiBytes
}

// WriteOutput delivers content to stdout and/or a file. When no file path is
// given the content always goes to stdout; when a file is written without
// printing, a confirmation line is emitted instead.
func WriteOutput(content string, filePath string, encodingName string, printToStdout bool) error {
	shouldPrint := printToStdout || filePath == ""
	if shouldPrint {
		fmt.Println(content)
	}

	if filePath == "" {
		return nil
	}

	encodedContent, encodeError := EncodeContent(content, encodingName)
	if encodeError != nil {
		return encodeError
	}
	if writeError := os.WriteFile(filePath, encodedContent, outputFilePermissions); writeError != nil {
		return fmt.Errorf(fileWriteFailedFormat, filePath, writeError)
	}
	if !shouldPrint {
		fmt.Printf(outputWrittenFormat, filePath)
	}
	return nil
}
