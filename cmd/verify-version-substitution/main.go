package main

import "github.com/oshokin/plist-version-verifier/cmd/verify-version-substitution/cmd"

func main() {
	cmd.Execute()
}
