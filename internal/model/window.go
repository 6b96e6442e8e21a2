package model

// ScratchpadWorkspace is the name sway and i3 give the hidden workspace
// holding scratchpad windows.
const ScratchpadWorkspace = "__i3_scratch"

// Window is the listing view of a tagged scratchpad window.
type Window struct {
	Name    string `yaml:"name"             json:"name"`
	Tag     string `yaml:"tag"              json:"tag"`
	ID      int64  `yaml:"id"               json:"id"`
	App     string `yaml:"app,omitempty"    json:"app,omitempty"`
	Title   string `yaml:"title,omitempty"  json:"title,omitempty"`
	PID     int    `yaml:"pid,omitempty"    json:"pid,omitempty"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
	Hidden  bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

// Windows converts tagged containers into listing entries, one per
// scratchpad tag carried.
func Windows(containers []Container) []Window {
	var result []Window
	for _, c := range containers {
		for _, m := range c.Marks {
			tag, ok := ParseTag(m)
			if !ok {
				continue
			}
			result = append(result, Window{
				Name:    tag.Name(),
				Tag:     tag.String(),
				ID:      c.ID,
				App:     c.AppID,
				Title:   c.Name,
				PID:     c.PID,
				Focused: c.Focused,
				Hidden:  c.Workspace == ScratchpadWorkspace,
			})
		}
	}
	return result
}
