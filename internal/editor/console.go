package editor

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"blander/internal/commands"
	"blander/internal/primitives"
	"blander/internal/scene"
	"blander/internal/selection"
)

// RegisterCommands registers the session's console commands on reg. Command output is written
// to out.
func RegisterCommands(reg *commands.Registry, s *Session, out io.Writer) {
	addFlags := flag.NewFlagSet("add", flag.ContinueOnError)
	count := addFlags.Int("n", 1, "number of primitives to add")
	reg.Register("add", "add [-n count] <cube|sphere|cylinder|plane>", addFlags, func(args []string) error {
		n := max(*count, 1)
		*count = 1
		if len(args) != 1 {
			return fmt.Errorf("add: expected one primitive kind")
		}
		k, err := primitives.ParseKind(args[0])
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		for i := 0; i < n; i++ {
			e, err := s.AddPrimitive(k)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			fmt.Fprintf(out, "added %s (id %d)\n", e.Name, e.ID)
		}
		return nil
	})

	reg.Register("delete", "delete", nil, func([]string) error {
		if !s.DeleteSelected() {
			return fmt.Errorf("delete: %w", ErrNoSelection)
		}
		return nil
	})

	reg.Register("select", "select <id|none>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("select: expected an identity or none")
		}
		if args[0] == "none" {
			s.SelectEntity(nil)
			return nil
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("select: %w", err)
		}
		e := s.Scene().Find(id)
		if e == nil {
			return fmt.Errorf("select: no entity with id %d", id)
		}
		s.SelectEntity(e)
		return nil
	})

	reg.Register("mode", "mode <translate|rotate|scale>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("mode: expected translate, rotate or scale")
		}
		m, err := ParseTransformMode(args[0])
		if err != nil {
			return fmt.Errorf("mode: %w", err)
		}
		s.SetTransformMode(m)
		return nil
	})

	reg.Register("edit", "edit", nil, func([]string) error {
		if s.Selected() == nil {
			return fmt.Errorf("edit: %w", ErrNoSelection)
		}
		if !s.ToggleEditMode() {
			return fmt.Errorf("edit: %s has no editable geometry", s.Selected().Name)
		}
		return nil
	})

	reg.Register("component", "component <vertex|face>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("component: expected vertex or face")
		}
		m, err := selection.ParseMode(args[0])
		if err != nil {
			return fmt.Errorf("component: %w", err)
		}
		if !s.SetComponentMode(m) {
			return fmt.Errorf("component: edit mode is not active")
		}
		return nil
	})

	reg.Register("subdivide", "subdivide", nil, func([]string) error {
		if s.Selected() == nil {
			return fmt.Errorf("subdivide: %w", ErrNoSelection)
		}
		if !s.Subdivide() {
			return fmt.Errorf("subdivide: %s has no editable geometry", s.Selected().Name)
		}
		fmt.Fprintf(out, "%s now has %d triangles\n", s.Selected().Name, s.Selected().Geometry.TriangleCount())
		return nil
	})

	reg.Register("set", "set <position|rotation|scale> <x|y|z> <value>", nil, func(args []string) error {
		if len(args) != 3 {
			return fmt.Errorf("set: expected field, axis and value")
		}
		if s.Selected() == nil {
			return fmt.Errorf("set: %w", ErrNoSelection)
		}
		f, err := scene.ParseField(args[0])
		if err != nil {
			return fmt.Errorf("set: %w", err)
		}
		axis, err := scene.ParseAxis(args[1])
		if err != nil {
			return fmt.Errorf("set: %w", err)
		}
		if !s.SetNumericField(f, axis, args[2]) {
			return fmt.Errorf("set: invalid number %q", args[2])
		}
		return nil
	})

	reg.Register("undo", "undo", nil, func([]string) error {
		if !s.Undo() {
			fmt.Fprintln(out, "nothing to undo")
		}
		return nil
	})

	reg.Register("redo", "redo", nil, func([]string) error {
		if !s.Redo() {
			fmt.Fprintln(out, "nothing to redo")
		}
		return nil
	})

	reg.Register("history", "history", nil, func([]string) error {
		h := s.History()
		fmt.Fprintf(out, "history %d/%d (limit %d)\n", h.Index()+1, h.Len(), h.Limit())
		return nil
	})

	reg.Register("help", "help", nil, func([]string) error {
		for _, name := range reg.Names() {
			c, _ := reg.Lookup(name)
			fmt.Fprintf(out, "cmd %s\n", c.Usage)
		}
		return nil
	})
}
