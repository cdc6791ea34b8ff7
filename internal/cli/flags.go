package cli

// Flags holds the global flag values.
type Flags struct {
	CfgFile  string
	Server   string
	UserID   string
	Token    string
	Language string
	Verbose  bool
}

// NewFlags returns Flags with default values.
func NewFlags() *Flags {
	return &Flags{
		Server:   "http://localhost:8080",
		Language: "English",
	}
}
