package alfred

// ModKey identifies a modifier key in an Item's Mods map. The constants
// cover Alfred's five modifiers; other raw strings (e.g. "cmd+alt") are
// passed to the wire as-is.
type ModKey string

const (
	ModCmd    ModKey = "cmd"
	ModOption ModKey = "alt"
	ModCtrl   ModKey = "ctrl"
	ModShift  ModKey = "shift"
	ModFn     ModKey = "fn"
)

// IconType selects how Alfred interprets an Icon's Path.
type IconType string

const (
	// IconTypeImage treats Path as an image file. This is the default.
	IconTypeImage IconType = ""
	// IconTypeFileIcon uses the icon of the file at Path.
	IconTypeFileIcon IconType = "fileicon"
	// IconTypeFileType treats Path as a UTI and uses the system icon for it.
	IconTypeFileType IconType = "filetype"
)

// Icon is a resource reference displayed next to an item. The zero Type
// means Path is a plain image file.
type Icon struct {
	Path string   `json:"path"`
	Type IconType `json:"type,omitempty" validate:"omitempty,oneof=fileicon filetype"`
}

// NewIcon builds an Icon, rejecting unrecognized types immediately.
func NewIcon(path string, typ IconType) (*Icon, error) {
	icon := &Icon{Path: path, Type: typ}
	if err := validateStruct(icon); err != nil {
		return nil, err
	}
	return icon, nil
}

// ImageIcon returns an icon with the contents of the image at path.
func ImageIcon(path string) *Icon {
	return &Icon{Path: path}
}

// FileIcon returns an icon matching the icon of the file at path, e.g. the
// Calendar icon for "/System/Applications/Calendar.app".
func FileIcon(path string) *Icon {
	return &Icon{Path: path, Type: IconTypeFileIcon}
}

// FileTypeIcon returns the system icon for a Uniform Type Identifier, e.g.
// "public.jpeg".
func FileTypeIcon(uti string) *Icon {
	return &Icon{Path: uti, Type: IconTypeFileType}
}

// Text defines what the user gets when copying the selected row with ⌘C
// (Copy) or displaying large type with ⌘L (LargeType). At least one field
// must be set.
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

// NewText builds a Text override, rejecting the case where both fields are
// absent.
func NewText(copyText, largeType string) (*Text, error) {
	text := &Text{Copy: copyText, LargeType: largeType}
	if err := text.check(); err != nil {
		return nil, err
	}
	return text, nil
}

// Data holds the values a modifier key overrides on its item. All fields
// are optional.
type Data struct {
	Subtitle string `json:"subtitle,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Icon     *Icon  `json:"icon,omitempty"`
	Valid    *bool  `json:"valid,omitempty"`
}

// ItemType tags how Alfred treats an item's arg.
type ItemType string

const (
	// ItemTypeDefault passes arg to the next workflow object unchanged.
	ItemTypeDefault ItemType = "default"
	// ItemTypeFile treats arg as a file, enabling Alfred's file actions.
	// Alfred checks that the file exists before showing the result.
	ItemTypeFile ItemType = "file"
	// ItemTypeFileSkipCheck is ItemTypeFile without the existence check.
	ItemTypeFileSkipCheck ItemType = "file:skipcheck"
)

// Item is one result row displayed for selection in Alfred. Items are
// built once by the handler and consumed only by serialization.
type Item struct {
	// Title is the first line of the item. Required.
	Title string `json:"title" validate:"required"`
	// Subtitle is the second line of the item.
	Subtitle string `json:"subtitle,omitempty"`
	// UID lets Alfred identify the item across runs to learn frequency.
	UID string `json:"uid,omitempty"`
	// Arg is the value passed to the next workflow object on selection.
	Arg string `json:"arg,omitempty"`
	// Icon is shown next to the item. Defaults to the workflow icon.
	Icon *Icon `json:"icon,omitempty"`
	// Valid marks whether the item is selectable.
	Valid *bool `json:"valid,omitempty"`
	// Match is what Alfred's own filter matches against when the workflow
	// is set to "Alfred Filters Results". Alfred uses Title when unset.
	Match string `json:"match,omitempty"`
	// Autocomplete fills the Alfred bar when the user presses tab.
	Autocomplete string `json:"autocomplete,omitempty"`
	// Mods overrides parts of the item while a modifier key is held.
	Mods map[ModKey]Data `json:"mods,omitempty" validate:"omitempty,dive"`
	// Text overrides the ⌘C / ⌘L values for the item.
	Text *Text `json:"text,omitempty"`
	// QuicklookURL is shown by Alfred's Quick Look. URLs and file paths.
	QuicklookURL string `json:"quicklookurl,omitempty"`
	// Actions routes the selection to Universal Actions instead of arg.
	Actions ActionArg `json:"actions,omitzero"`
	// Type tags how arg is treated. Normalized to "default" when unset.
	Type ItemType `json:"type" validate:"omitempty,oneof=default file file:skipcheck"`
}

// Validate checks the item's invariants and normalizes the type tag to its
// canonical wire string. Invalid construction is a programming error in the
// workflow and surfaces here, before anything reaches Alfred.
func (i *Item) Validate() error {
	if i.Type == "" {
		i.Type = ItemTypeDefault
	}
	if err := validateStruct(i); err != nil {
		return err
	}
	if i.Text != nil {
		if err := i.Text.check(); err != nil {
			return err
		}
	}
	for _, data := range i.Mods {
		if data.Icon != nil {
			if err := validateStruct(data.Icon); err != nil {
				return err
			}
		}
	}
	return nil
}

// ScriptFilterOutput is the value a script filter handler returns. It is
// constructed once by the handler and consumed exactly once by the
// serializer.
type ScriptFilterOutput struct {
	// Rerun asks Alfred to run the filter again after this many seconds.
	// Must lie in [0.1, 5] when set.
	Rerun *float64 `json:"rerun,omitempty" validate:"omitempty,min=0.1,max=5"`
	// Items are the result rows, in display order.
	Items []Item `json:"items,omitempty"`
	// Variables are threaded to the next workflow object and to reruns of
	// this filter, which makes them usable as state between runs.
	Variables map[string]string `json:"variables,omitempty"`
}

// Validate checks the output tree, normalizing each item on the way.
func (o *ScriptFilterOutput) Validate() error {
	if err := validateStruct(o); err != nil {
		return err
	}
	for idx := range o.Items {
		if err := o.Items[idx].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Bool returns a pointer to v, for the optional boolean fields.
func Bool(v bool) *bool {
	return &v
}

// Rerun returns a pointer to an interval in seconds, for
// ScriptFilterOutput.Rerun.
func Rerun(seconds float64) *float64 {
	return &seconds
}
