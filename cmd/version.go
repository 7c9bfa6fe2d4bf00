package cmd

import "fmt"

// AppVersion is the released backend version (overridable via ldflags).
var AppVersion = "1.0.0"

func runVersion() {
	fmt.Printf("Nova AI Backend v%s\n", AppVersion)
}
