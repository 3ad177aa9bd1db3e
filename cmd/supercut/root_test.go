package main

import (
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()

	want := []string{"names", "list", "preview", "render", "edit", "export", "check", "cache", "config"}
	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			for _, cmd := range root.Commands() {
				if cmd.Name() == name {
					return
				}
			}
			t.Errorf("command %q not registered", name)
		})
	}
}

func TestRootPersistentFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "cache-dir", "language", "external-subs"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
}

func TestEditSubcommands(t *testing.T) {
	root := newRootCommand()
	edit, _, err := root.Find([]string{"edit"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"create", "preview", "render"} {
		found := false
		for _, cmd := range edit.Commands() {
			if cmd.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("edit %s not registered", name)
		}
	}
}

func TestExportSubcommands(t *testing.T) {
	root := newRootCommand()
	export, _, err := root.Find([]string{"export"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"edl", "mlt"} {
		found := false
		for _, cmd := range export.Commands() {
			if cmd.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("export %s not registered", name)
		}
	}
}
