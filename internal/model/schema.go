package model

import (
	"reflect"
	"strings"
)

// CollectionSchema lists the declared fields of one collection.
type CollectionSchema struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// registry is ordered; Schema reports collections in this order.
var registry = []struct {
	name string
	doc  any
}{
	{CollectionUserProfile, UserProfile{}},
	{CollectionGesture, Gesture{}},
	{CollectionModule, Module{}},
	{CollectionQuizQuestion, QuizQuestion{}},
	{CollectionProgress, Progress{}},
}

// Schema describes every known collection from the in-process model
// definitions. It never touches the database.
func Schema() []CollectionSchema {
	out := make([]CollectionSchema, 0, len(registry))
	for _, entry := range registry {
		out = append(out, CollectionSchema{
			Name:   entry.name,
			Fields: FieldNames(entry.doc),
		})
	}
	return out
}

// FieldNames returns the bson field names of a struct in declaration order,
// skipping the identifier, inlined maps and ignored fields.
func FieldNames(doc any) []string {
	t := reflect.TypeOf(doc)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var fields []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag := f.Tag.Get("bson")
		name, opts, _ := strings.Cut(tag, ",")
		if name == "-" || name == "_id" || strings.Contains(opts, "inline") {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		fields = append(fields, name)
	}
	return fields
}
