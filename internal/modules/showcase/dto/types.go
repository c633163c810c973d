package dto

type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

type PageOutput struct {
	Name     string
	Title    string
	Kind     string
	Featured bool
}

type LoadInput struct {
	Page   string
	Format Format
}

type LoadOutput struct {
	Page   string
	Source string
	Count  int
	// Failure holds the rendered load-error placeholder when every source failed.
	Failure string
}

type SelectionOutput struct {
	Category string
	Tag      string
	Sort     string
}

type ViewInput struct {
	Page     string
	Format   Format
	Category string
	Tag      string
	Sort     string
	// Document renders the whole page (controls, summary, featured, list)
	// into Markup instead of the list alone.
	Document bool
}

type ViewOutput struct {
	Page            string
	Selection       SelectionOutput
	Markup          string
	Featured        string
	FeaturedVisible bool
	Shown           int
	Total           int
	Empty           bool
	Summary         string
}

type ControlOutput struct {
	ID     string
	Value  string
	Label  string
	Active bool
}

type ControlGroupOutput struct {
	Group    string
	Axis     string
	Controls []ControlOutput
}

type ActivateInput struct {
	Page      string
	Format    Format
	ControlID string
}

type ExportInput struct {
	OutDir string
	Pages  []string
}

type ExportOutput struct {
	Written []string
}

type ReindexOutput struct {
	Page    string
	Source  string
	Records int
}

type CountOutput struct {
	Value string
	Count int
}

type StatsOutput struct {
	Page       string
	Total      int
	Categories []CountOutput
	Tags       []CountOutput
}
