package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/bspline/io"
)

func TestGetModeName(t *testing.T) {
	a, b, c := "", "", ""
	vars := map[string]*string{"Render": &a, "Example": &b, "ExampleConfig": &c}

	_, err := getModeName(vars)
	assert.Error(t, err)

	b = "out"
	name, err := getModeName(vars)
	assert.NoError(t, err)
	assert.Equal(t, "Example", name)

	a = "bspline.config"
	_, err = getModeName(vars)
	assert.Error(t, err)
}

func TestFileGroup(t *testing.T) {
	dir := t.TempDir()
	con := &io.SharedConfig{LogFile: filepath.Join(dir, "log.out")}

	fg, err := NewFileGroup(con)
	if err != nil {
		t.Fatal(err.Error())
	}
	log.Printf("hello")
	fg.Close()

	b, err := os.ReadFile(con.LogFile)
	assert.NoError(t, err)
	assert.Contains(t, string(b), "hello")

	fg, err = NewFileGroup(&io.SharedConfig{})
	assert.NoError(t, err)
	fg.Close()
}
