// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-api-caller/internal/flatten"
	"github.com/MKhiriev/go-api-caller/models"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

// BodyKind identifies the wire encoding of a [Body].
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyJSON
	BodyMultipart
	BodyForm
)

const (
	// DefaultFileField is the multipart part name of an uploaded file when
	// no other name is given.
	DefaultFileField = "file"
	// DataField is the multipart part name of the JSON sidecar.
	DataField = "data"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeText = "text/plain; charset=utf-8"
)

// Body is an encoded request payload.
type Body struct {
	Kind        BodyKind
	Data        []byte
	ContentType string
	Parts       []Part
	Form        []flatten.Entry
}

// Part is one multipart/form-data section. An empty ContentType sends the
// part without a Content-Type header.
type Part struct {
	Name        string
	FileName    string
	ContentType string
	Data        []byte
}

// File is an uploaded file: its original name and its content.
type File struct {
	FileName string
	Content  io.Reader
}

// Upload describes a multipart file upload.
type Upload struct {
	File File
	// FieldName names the file part; empty means [DefaultFileField].
	FieldName string
	// Data, when non-nil, is sent as JSON in a part named [DataField].
	Data any
	// Fields are sent as plain string parts in order.
	Fields []models.Header
	// MimeType, when non-blank, overrides the content type of the first part.
	MimeType string
}

// FileFromBytes wraps in-memory content.
func FileFromBytes(name string, data []byte) File {
	return File{FileName: name, Content: bytes.NewReader(data)}
}

// FileFromPath reads the file at path into memory.
func FileFromPath(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read upload file: %w", err)
	}
	return FileFromBytes(filepath.Base(path), data), nil
}

// FileFromHeader reads a file received in an inbound multipart request.
func FileFromHeader(fh *multipart.FileHeader) (File, error) {
	f, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return File{}, fmt.Errorf("read upload file: %w", err)
	}
	return FileFromBytes(fh.Filename, data), nil
}

// NoBody is the payload of query-string-only calls.
func NoBody() Body {
	return Body{Kind: BodyNone}
}

// EncodeJSON serializes v with the standard-library-compatible jsoniter
// configuration.
func EncodeJSON(v any) (Body, error) {
	return encodeJSON(jsoniter.ConfigCompatibleWithStandardLibrary, v)
}

// EncodeForm flattens v and encodes it as application/x-www-form-urlencoded.
func EncodeForm(v any) (Body, error) {
	entries, err := flatten.Flatten(v, "")
	if err != nil {
		return Body{}, &EncodeError{Kind: "form", Err: err}
	}

	return Body{
		Kind:        BodyForm,
		Data:        flatten.FormEncode(entries),
		ContentType: contentTypeForm,
		Form:        entries,
	}, nil
}

// EncodeMultipart reads the whole upload file into memory and lays out the
// parts: the file, the optional "data" sidecar, then the extra fields.
func EncodeMultipart(up Upload) (Body, error) {
	return encodeMultipart(jsoniter.ConfigCompatibleWithStandardLibrary, up)
}

func encodeJSON(api jsoniter.API, v any) (Body, error) {
	data, err := api.Marshal(v)
	if err != nil {
		return Body{}, &EncodeError{Kind: "json", Err: err}
	}

	return Body{Kind: BodyJSON, Data: data, ContentType: contentTypeJSON}, nil
}

func encodeMultipart(api jsoniter.API, up Upload) (Body, error) {
	if up.File.Content == nil {
		return Body{}, &EncodeError{Kind: "multipart", Err: ErrNoFileContent}
	}

	content, err := io.ReadAll(up.File.Content)
	if err != nil {
		return Body{}, &EncodeError{Kind: "multipart", Err: err}
	}

	name := strings.TrimSpace(up.FieldName)
	if name == "" {
		name = DefaultFileField
	}

	parts := make([]Part, 0, 2+len(up.Fields))
	parts = append(parts, Part{Name: name, FileName: up.File.FileName, Data: content})

	if up.Data != nil {
		data, err := api.Marshal(up.Data)
		if err != nil {
			return Body{}, &EncodeError{Kind: "multipart", Err: err}
		}
		parts = append(parts, Part{Name: DataField, ContentType: contentTypeText, Data: data})
	}

	for _, f := range up.Fields {
		parts = append(parts, Part{Name: f.Name, ContentType: contentTypeText, Data: []byte(f.Value)})
	}

	if mt := strings.TrimSpace(up.MimeType); mt != "" {
		parts[0].ContentType = mt
	}

	return Body{Kind: BodyMultipart, Parts: parts}, nil
}

// attach puts the body on req. The caller's header set already holds the
// auth headers; Content-Type is only set for kinds that need it.
func (b Body) attach(req *resty.Request) {
	switch b.Kind {
	case BodyJSON, BodyForm:
		req.SetHeader("Content-Type", b.ContentType)
		req.SetBody(b.Data)
	case BodyMultipart:
		fields := make([]*resty.MultipartField, 0, len(b.Parts))
		for _, p := range b.Parts {
			fields = append(fields, &resty.MultipartField{
				Param:       p.Name,
				FileName:    p.FileName,
				ContentType: p.ContentType,
				Reader:      bytes.NewReader(p.Data),
			})
		}
		req.SetMultipartFields(fields...)
	}
}
