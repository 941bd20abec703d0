package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms
// before spilling to disk (10MB). Logo uploads are recommended to stay under
// 5MB, so typical requests parse entirely in memory.
const DefaultMaxMemory = 10 << 20

// Multipart creates a binder for multipart/form-data value fields.
//
// It binds struct fields tagged `form:"name"`. Supported field types are
// string (first value) and []string (all values for a repeated field).
// Fields absent from the request are left at their zero value.
//
// Example:
//
//	type ReferralRequest struct {
//		ReferrerName string   `form:"referrerName"`
//		Links        []string `form:"links"`
//		Logo         FileUpload `file:"logo"`
//	}
func Multipart() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected multipart/form-data", ErrMissingContentType)
		}
		if !strings.HasPrefix(contentType, "multipart/form-data") {
			return fmt.Errorf("%w: got %s, expected multipart/form-data", ErrUnsupportedMediaType, mediaType(contentType))
		}

		if r.MultipartForm == nil {
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
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

			tag := rt.Field(i).Tag.Get("form")
			if tag == "" || tag == "-" {
				continue
			}
			if idx := strings.Index(tag, ","); idx != -1 {
				tag = tag[:idx]
			}

			values := r.MultipartForm.Value[tag]
			if len(values) == 0 {
				continue
			}

			switch field.Kind() {
			case reflect.String:
				field.SetString(values[0])
			case reflect.Slice:
				if field.Type().Elem().Kind() != reflect.String {
					return fmt.Errorf("%w: field %s: unsupported slice type %s", ErrInvalidForm, rt.Field(i).Name, field.Type())
				}
				field.Set(reflect.ValueOf(append([]string(nil), values...)))
			default:
				return fmt.Errorf("%w: field %s: unsupported type %s", ErrInvalidForm, rt.Field(i).Name, field.Type())
			}
		}

		return nil
	}
}
