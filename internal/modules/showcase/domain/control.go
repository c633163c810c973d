package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "folio/internal/platform/errors"
	"folio/internal/platform/slug"
)

// Control is one clickable choice. It sets exactly one axis to Value.
type Control struct {
	ID     string
	Group  string
	Axis   Axis
	Value  string
	Label  string
	Active bool
}

type ControlGroup struct {
	Name     string
	Axis     Axis
	Controls []Control
}

// ParseGroup maps a control group name to the axis it drives. Events call
// their category group "type", projects call it "status".
func ParseGroup(group string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(group)) {
	case "category", "status", "type":
		return AxisCategory, nil
	case "tag":
		return AxisTag, nil
	case "sort":
		return AxisSort, nil
	default:
		return "", fmt.Errorf("%w: unknown control group %q", apperrors.ErrInvalidInput, group)
	}
}

type controlRef struct {
	group int
	index int
}

// ControlRegistry is the group → controls table, resolved once per page. It
// keeps exactly one active control per group.
type ControlRegistry struct {
	groups []ControlGroup
	byID   map[string]controlRef
	active []int
}

func NewControlRegistry(controls []Control, initial Selection) (*ControlRegistry, error) {
	r := &ControlRegistry{byID: map[string]controlRef{}}
	groupIdx := map[Axis]int{}
	for _, axis := range Axes {
		groupIdx[axis] = len(r.groups)
		r.groups = append(r.groups, ControlGroup{Axis: axis})
	}

	for _, c := range controls {
		axis, err := ParseGroup(c.Group)
		if err != nil {
			return nil, err
		}
		if c.ID == "" {
			return nil, fmt.Errorf("%w: control without id in group %s", apperrors.ErrInvalidInput, c.Group)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate control id %q", apperrors.ErrInvalidInput, c.ID)
		}
		if axis == AxisSort {
			if _, err := ParseSortOrder(c.Value); err != nil {
				return nil, err
			}
		}
		gi := groupIdx[axis]
		g := &r.groups[gi]
		if g.Name == "" {
			g.Name = c.Group
		}
		for _, existing := range g.Controls {
			if existing.Value == c.Value {
				return nil, fmt.Errorf("%w: duplicate value %q in group %s", apperrors.ErrInvalidInput, c.Value, g.Name)
			}
		}
		c.Axis = axis
		c.Active = false
		r.byID[c.ID] = controlRef{group: gi, index: len(g.Controls)}
		g.Controls = append(g.Controls, c)
	}

	r.active = make([]int, len(r.groups))
	for gi, g := range r.groups {
		required := []string{AllValue}
		if g.Axis == AxisSort {
			required = []string{string(SortNewest), string(SortOldest)}
		}
		for _, v := range required {
			if _, ok := r.find(gi, v); !ok {
				return nil, fmt.Errorf("%w: %s group needs a %q control", apperrors.ErrInvalidInput, g.Axis, v)
			}
		}
		idx, ok := r.find(gi, initial.Value(g.Axis))
		if !ok {
			return nil, fmt.Errorf("%w: no %s control for %q", apperrors.ErrInvalidInput, g.Axis, initial.Value(g.Axis))
		}
		r.active[gi] = idx
	}
	return r, nil
}

func (r *ControlRegistry) find(group int, value string) (int, bool) {
	for i, c := range r.groups[group].Controls {
		if c.Value == value {
			return i, true
		}
	}
	return 0, false
}

func (r *ControlRegistry) groupOf(axis Axis) int {
	for i, g := range r.groups {
		if g.Axis == axis {
			return i
		}
	}
	return -1
}

func (r *ControlRegistry) Lookup(id string) (Control, bool) {
	ref, ok := r.byID[id]
	if !ok {
		return Control{}, false
	}
	c := r.groups[ref.group].Controls[ref.index]
	c.Active = r.active[ref.group] == ref.index
	return c, true
}

// Find returns the control of axis carrying value.
func (r *ControlRegistry) Find(axis Axis, value string) (Control, bool) {
	gi := r.groupOf(axis)
	if gi < 0 {
		return Control{}, false
	}
	idx, ok := r.find(gi, value)
	if !ok {
		return Control{}, false
	}
	c := r.groups[gi].Controls[idx]
	c.Active = r.active[gi] == idx
	return c, true
}

// FindInGroup resolves a control by its group name ("type", "status", "tag",
// "sort") and value.
func (r *ControlRegistry) FindInGroup(group, value string) (Control, bool) {
	axis, err := ParseGroup(group)
	if err != nil {
		return Control{}, false
	}
	return r.Find(axis, value)
}

// Activate marks id active and every sibling inactive.
func (r *ControlRegistry) Activate(id string) (Control, error) {
	ref, ok := r.byID[id]
	if !ok {
		return Control{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownControl, id)
	}
	r.active[ref.group] = ref.index
	c := r.groups[ref.group].Controls[ref.index]
	c.Active = true
	return c, nil
}

func (r *ControlRegistry) Active(axis Axis) Control {
	gi := r.groupOf(axis)
	if gi < 0 {
		return Control{}
	}
	c := r.groups[gi].Controls[r.active[gi]]
	c.Active = true
	return c
}

// Groups returns a snapshot with Active set on exactly one control per group.
func (r *ControlRegistry) Groups() []ControlGroup {
	out := make([]ControlGroup, len(r.groups))
	for gi, g := range r.groups {
		controls := make([]Control, len(g.Controls))
		copy(controls, g.Controls)
		controls[r.active[gi]].Active = true
		out[gi] = ControlGroup{Name: g.Name, Axis: g.Axis, Controls: controls}
	}
	return out
}

func (r *ControlRegistry) Clone() *ControlRegistry {
	return &ControlRegistry{
		groups: r.groups,
		byID:   r.byID,
		active: append([]int(nil), r.active...),
	}
}

// BuildControls derives the control surface for a loaded collection:
// category controls from the page table plus any unlabelled categories seen
// in the data, one control per tag, and both sort orders.
func BuildControls(page Page, col Collection) []Control {
	issued := map[string]bool{}
	newID := func(group, value string) string {
		base := slug.Join("-", group, value)
		id := base
		for n := 2; issued[id]; n++ {
			id = base + "-" + strconv.Itoa(n)
		}
		issued[id] = true
		return id
	}
	add := func(out []Control, group, value, label string) []Control {
		return append(out, Control{ID: newID(group, value), Group: group, Value: value, Label: label})
	}

	group := page.CategoryGroup
	out := add(nil, group, AllValue, "All")
	known := map[Category]bool{}
	for _, def := range page.Categories {
		if known[def.Value] || string(def.Value) == AllValue {
			continue
		}
		known[def.Value] = true
		out = add(out, group, string(def.Value), page.CategoryLabel(def.Value))
	}
	for _, r := range col.records {
		if known[r.Category] || string(r.Category) == AllValue {
			continue
		}
		known[r.Category] = true
		out = add(out, group, string(r.Category), string(r.Category))
	}

	out = add(out, "tag", AllValue, "All")
	for _, tag := range col.Tags() {
		if tag == AllValue {
			continue
		}
		out = add(out, "tag", tag, tag)
	}

	out = add(out, "sort", string(SortNewest), "Newest")
	out = add(out, "sort", string(SortOldest), "Oldest")
	return out
}
