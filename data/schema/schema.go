// Package schema declares the relational tables and runs ent's migrator
// against them.
package schema

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/ncobase/taskboard/structs"
)

// Table and column names.
const (
	ProjectTable = "projects"
	TaskTable    = "tasks"

	FieldID          = "id"
	FieldName        = "name"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldAssignee    = "assignee"
	FieldProjectID   = "project_id"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

var (
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		primaryKey(),
		{Name: FieldName, Type: field.TypeString, Size: 255},
		createdAt(),
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       ProjectTable,
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "project_created_at", Columns: []*schema.Column{ProjectsColumns[2]}},
		},
	}

	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		primaryKey(),
		{Name: FieldTitle, Type: field.TypeString, Size: 255},
		{Name: FieldDescription, Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: FieldStatus, Type: field.TypeEnum, Enums: structs.StatusStrings(), Default: string(structs.StatusTodo)},
		{Name: FieldAssignee, Type: field.TypeString, Size: 255},
		createdAt(),
		updatedAt(),
		reference(FieldProjectID),
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       TaskTable,
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{Name: "task_project_id_status", Columns: []*schema.Column{TasksColumns[7], TasksColumns[3]}},
			{Name: "task_created_at", Columns: []*schema.Column{TasksColumns[5]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProjectsTable,
		TasksTable,
	}
)

func init() {
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
}

// Create runs the migration for all tables. It is additive: existing
// columns and tables are kept.
func Create(ctx context.Context, drv dialect.Driver, opts ...schema.MigrateOption) error {
	migrate, err := schema.NewMigrate(drv, opts...)
	if err != nil {
		return fmt.Errorf("ent/migrate: %w", err)
	}
	return migrate.Create(ctx, Tables...)
}
