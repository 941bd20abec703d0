package binder

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"reflect"
	"strings"
)

// FileUpload represents an uploaded file read fully into memory.
type FileUpload struct {
	// Filename is the original filename provided by the client.
	Filename string

	// Size is the size of the file in bytes.
	Size int64

	// Header contains the MIME header fields for this file part.
	Header textproto.MIMEHeader

	// Content holds the file data.
	Content []byte
}

// ContentType returns the MIME type of the uploaded file. It first checks the
// Content-Type header, then falls back to detecting the type from the file
// extension.
func (f *FileUpload) ContentType() string {
	if ct := f.Header.Get("Content-Type"); ct != "" {
		mt, _, _ := mime.ParseMediaType(ct)
		return mt
	}
	return mime.TypeByExtension(filepath.Ext(f.Filename))
}

// IsEmpty reports whether no file was uploaded for this field.
func (f *FileUpload) IsEmpty() bool {
	return f.Size == 0
}

// File creates a binder that populates fields tagged `file:"name"` from a
// multipart request. Supported field types are FileUpload and *FileUpload.
// Non-multipart requests and absent files are skipped silently so that the
// binder composes with Multipart() on requests without attachments.
func File() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "multipart/form-data") {
			return nil
		}

		if r.MultipartForm == nil {
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return nil
			}
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidForm)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidForm)
		}

		rt := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}

			tag := rt.Field(i).Tag.Get("file")
			if tag == "" || tag == "-" {
				continue
			}

			headers := r.MultipartForm.File[tag]
			if len(headers) == 0 {
				continue
			}

			upload, err := readFileHeader(headers[0])
			if err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, rt.Field(i).Name, err)
			}

			switch field.Type() {
			case reflect.TypeOf(FileUpload{}):
				field.Set(reflect.ValueOf(*upload))
			case reflect.TypeOf(&FileUpload{}):
				field.Set(reflect.ValueOf(upload))
			default:
				return fmt.Errorf("%w: field %s: unsupported type for file field: %s", ErrInvalidForm, rt.Field(i).Name, field.Type())
			}
		}

		return nil
	}
}

func readFileHeader(header *multipart.FileHeader) (*FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &FileUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Header:   header.Header,
		Content:  content,
	}, nil
}
