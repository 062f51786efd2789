//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds the binary and loads every scene up to the main menu.
func (Run) Load() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run load...")
	if _, err := executeCmd("bin/litecraft", withArgs("load"), withStream()); err != nil {
		return err
	}
	return nil
}

// Lists the resource packs of the game folder.
func (Run) Packs() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd("bin/litecraft", withArgs("packs"), withStream())
	return err
}
