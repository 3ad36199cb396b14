package schema

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/ncobase/taskboard/utils/nanoid"
)

// Column helpers shared by the tables, mirroring the primary key and
// timestamp mixins of generated ent schemas.

// primaryKey is a fixed-size nanoid string id.
func primaryKey() *schema.Column {
	return &schema.Column{Name: "id", Type: field.TypeString, Unique: true, Size: nanoid.PrimaryKeySize}
}

// reference is a foreign key column holding another table's primary key.
func reference(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeString, Size: nanoid.PrimaryKeySize}
}

func createdAt() *schema.Column {
	return &schema.Column{Name: "created_at", Type: field.TypeTime}
}

func updatedAt() *schema.Column {
	return &schema.Column{Name: "updated_at", Type: field.TypeTime}
}
