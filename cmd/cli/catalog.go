package main

import (
	"fmt"
	"strings"

	"github.com/limaJavier/routine/pkg/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Loads the catalog, applies change and saves it back
func (env *environment) mutate(change func(*catalog.Catalog) error) error {
	c, err := env.store.Load()
	if err != nil {
		return err
	}
	if err := change(c); err != nil {
		return err
	}
	return env.store.Save(c)
}

func newSubjectCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage subjects",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Add a subject",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				err := env.mutate(func(c *catalog.Catalog) error { return c.AddSubject(args[0]) })
				if err == nil {
					env.logger.Info("subject added", zap.String("subject", args[0]))
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Remove a subject no teacher or class refers to",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				err := env.mutate(func(c *catalog.Catalog) error { return c.RemoveSubject(args[0]) })
				if err == nil {
					env.logger.Info("subject removed", zap.String("subject", args[0]))
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List subjects",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := env.store.Load()
				if err != nil {
					return err
				}
				for _, subject := range c.Subjects {
					fmt.Fprintln(cmd.OutOrStdout(), subject)
				}
				return nil
			},
		},
	)
	return cmd
}

func newTeacherCommand(env *environment) *cobra.Command {
	return newEntryCommand(env, entryKind{
		name:     "teacher",
		relation: "subjects the teacher can teach",
		add:      (*catalog.Catalog).AddTeacher,
		remove:   (*catalog.Catalog).RemoveTeacher,
		list: func(c *catalog.Catalog) [][2]string {
			rows := make([][2]string, 0, len(c.Teachers))
			for _, teacher := range c.Teachers {
				rows = append(rows, [2]string{teacher.Name, strings.Join(teacher.Subjects, ", ")})
			}
			return rows
		},
	})
}

func newClassCommand(env *environment) *cobra.Command {
	return newEntryCommand(env, entryKind{
		name:     "class",
		relation: "subjects the class must take",
		add:      (*catalog.Catalog).AddClass,
		remove:   (*catalog.Catalog).RemoveClass,
		list: func(c *catalog.Catalog) [][2]string {
			rows := make([][2]string, 0, len(c.Classes))
			for _, class := range c.Classes {
				rows = append(rows, [2]string{class.Name, strings.Join(class.Subjects, ", ")})
			}
			return rows
		},
	})
}

// Teachers and classes share the same shape: a name bound to a subject list
type entryKind struct {
	name     string
	relation string
	add      func(*catalog.Catalog, string, []string) error
	remove   func(*catalog.Catalog, string) error
	list     func(*catalog.Catalog) [][2]string
}

func newEntryCommand(env *environment, kind entryKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.name,
		Short: fmt.Sprintf("Manage %vs", kind.name),
	}

	var subjects []string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: fmt.Sprintf("Add a %v, replacing the subjects of an existing one", kind.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := env.mutate(func(c *catalog.Catalog) error { return kind.add(c, args[0], subjects) })
			if err == nil {
				env.logger.Info(kind.name+" saved", zap.String("name", args[0]), zap.Strings("subjects", subjects))
			}
			return err
		},
	}
	add.Flags().StringSliceVarP(&subjects, "subjects", "s", nil, kind.relation)
	_ = add.MarkFlagRequired("subjects")

	remove := &cobra.Command{
		Use:   "remove NAME",
		Short: fmt.Sprintf("Remove a %v", kind.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := env.mutate(func(c *catalog.Catalog) error { return kind.remove(c, args[0]) })
			if err == nil {
				env.logger.Info(kind.name+" removed", zap.String("name", args[0]))
			}
			return err
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %vs and their subjects", kind.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := env.store.Load()
			if err != nil {
				return err
			}
			for _, row := range kind.list(c) {
				fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", row[0], row[1])
			}
			return nil
		},
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}
