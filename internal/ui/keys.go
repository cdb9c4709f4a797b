package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the console understands. Views pick the subset
// they render in the command bar.
type keyMap struct {
	Dashboard key.Binding
	Pages     key.Binding
	Tracks    key.Binding
	Playlists key.Binding
	Images    key.Binding
	Audios    key.Binding
	Logs      key.Binding

	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Preview  key.Binding
	New      key.Binding
	Delete   key.Binding
	Search   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	LoadMore key.Binding
	Upload   key.Binding
	Rename   key.Binding
	Refresh  key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Generate  key.Binding
	Editor    key.Binding

	Theme  key.Binding
	Help   key.Binding
	Back   key.Binding
	Logout key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
		Pages:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "pages")),
		Tracks:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "tracks")),
		Playlists: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "playlists")),
		Images:    key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "images")),
		Audios:    key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "audio")),
		Logs:      key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logs")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "navigate")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/k", "navigate")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Preview:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextPage: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
		LoadMore: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more")),
		Upload:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
		Rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Refresh:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Generate:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		Editor:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "editor")),

		Theme:  key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Logout: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
