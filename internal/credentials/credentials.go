// Package credentials prepares and reads the Firebase service-account JSON
// that deployments pass through the FIREBASE_CREDENTIALS variable.
package credentials

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrFileNotFound is returned when the credentials file does not exist
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidJSON is returned when the credentials are not valid JSON
	ErrInvalidJSON = errors.New("file is not valid JSON")
	// ErrUnparseable is returned when no supported format matches
	ErrUnparseable = errors.New("could not parse Firebase credentials from any source")
)

// RequiredFields are the keys every service-account file is expected to carry
var RequiredFields = []string{"type", "project_id", "private_key_id", "private_key", "client_email"}

// Format identifies how FIREBASE_CREDENTIALS was supplied
type Format int

const (
	FormatUnknown Format = iota
	FormatBase64
	FormatJSON
	FormatFile
)

func (f Format) String() string {
	switch f {
	case FormatBase64:
		return "base64"
	case FormatJSON:
		return "json"
	case FormatFile:
		return "file"
	default:
		return "unknown"
	}
}

// Encoded is the result of encoding a service-account file
type Encoded struct {
	Value    string
	Warnings []string
}

// Encode reads a service-account file, checks it for the expected fields and
// returns the base64 encoding of its compact JSON text. Missing fields only
// produce warnings. Decoding the value yields the file's exact bytes only when
// the file is already compact; whitespace between tokens is dropped.
func Encode(path string) (*Encoded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	encoded, err := EncodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return encoded, nil
}

// EncodeBytes is Encode for content already in memory
func EncodeBytes(data []byte) (*Encoded, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidJSON
	}

	// Compact keeps the key order of the source document
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, ErrInvalidJSON
	}

	return &Encoded{
		Value:    base64.StdEncoding.EncodeToString(compact.Bytes()),
		Warnings: MissingFieldWarnings(doc),
	}, nil
}

// MissingFieldWarnings lists a warning for each required field absent from doc
func MissingFieldWarnings(doc interface{}) []string {
	fields, _ := doc.(map[string]interface{})

	var warnings []string
	for _, field := range RequiredFields {
		if _, ok := fields[field]; !ok {
			warnings = append(warnings, fmt.Sprintf(
				"Warning: The JSON file may not be a valid Firebase service account key (missing '%s' field).", field))
		}
	}
	return warnings
}

// Decode resolves a FIREBASE_CREDENTIALS value into service-account JSON.
// The formats are tried in order: base64-encoded JSON, raw JSON, file path.
// Each failed attempt is logged; the first success wins.
func Decode(value string, logger *zap.Logger) ([]byte, Format, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, FormatUnknown, ErrUnparseable
	}

	// 1. base64-encoded JSON (recommended for serverless deployments)
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err == nil && json.Valid(decoded) {
		logger.Info("Decoded base64 Firebase credentials")
		return decoded, FormatBase64, nil
	}
	if err == nil {
		err = ErrInvalidJSON
	}
	logger.Error("Failed to decode base64 credentials", zap.Error(err))

	// 2. raw JSON string
	if json.Valid([]byte(value)) {
		logger.Info("Parsed Firebase credentials as JSON string")
		return []byte(value), FormatJSON, nil
	}
	logger.Error("Failed to parse JSON credentials", zap.Error(ErrInvalidJSON))

	// 3. filesystem path
	data, err := os.ReadFile(value)
	if err == nil && json.Valid(data) {
		logger.Info("Loaded Firebase credentials from file", zap.String("path", value))
		return data, FormatFile, nil
	}
	if err == nil {
		err = ErrInvalidJSON
	}
	logger.Error("Failed to load credentials from file", zap.Error(err))

	return nil, FormatUnknown, ErrUnparseable
}
