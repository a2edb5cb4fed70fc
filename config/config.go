// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config holds the optable settings. Settings start from defaults,
// are overlaid by an optional TOML file, and finally by command line flags.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
)

// FileName is the settings file searched for in the user and system
// configuration folders.
const FileName = "optable.toml"

// Settings of a table compilation.
type Settings struct {
	Format   string `toml:"format" flag:"format" doc:"output format: c, go, or bin"`
	Prefix   string `toml:"prefix" flag:"prefix" doc:"symbol prefix of the emitted tables"`
	Guard    string `toml:"guard" flag:"guard" doc:"C include guard macro"`
	Package  string `toml:"package" flag:"package" doc:"Go package name"`
	Sentinel string `toml:"sentinel" flag:"sentinel" doc:"3 character name of undefined opcodes"`
	Width    int    `toml:"width" flag:"width" doc:"name table chunk width"`
	Select   string `toml:"select" flag:"select" doc:"starlark expression selecting records"`
	Compress bool   `toml:"compress" flag:"z" doc:"snappy compress binary output"`
	Verbose  bool   `toml:"verbose" flag:"v" doc:"verbose parsing"`
}

// Default returns the settings reproducing the classic instructions.h.
func Default() *Settings {
	return &Settings{
		Format:   "c",
		Prefix:   "op6502",
		Guard:    "INSTRUCTIONS_H",
		Package:  "optable",
		Sentinel: "db ",
		Width:    63,
	}
}

type settingsField struct {
	name  string
	flag  string
	index int
	kind  reflect.Kind
	doc   string
}

var settingsFields []settingsField

func init() {
	settingsType := reflect.TypeOf(Settings{})
	settingsFields = make([]settingsField, settingsType.NumField())
	for i := range settingsFields {
		f := settingsType.Field(i)
		name, _ := f.Tag.Lookup("flag")
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			flag:  name,
			index: i,
			kind:  f.Type.Kind(),
			doc:   doc,
		}
	}
}

// Register binds a flag to each setting, defaulting to its current value.
func (s *Settings) Register(fs *flag.FlagSet) {
	value := reflect.ValueOf(s).Elem()
	for _, f := range settingsFields {
		ptr := value.Field(f.index).Addr().Interface()
		switch f.kind {
		case reflect.String:
			fs.StringVar(ptr.(*string), f.flag, *ptr.(*string), f.doc)
		case reflect.Int:
			fs.IntVar(ptr.(*int), f.flag, *ptr.(*int), f.doc)
		case reflect.Bool:
			fs.BoolVar(ptr.(*bool), f.flag, *ptr.(*bool), f.doc)
		default:
			panic(fmt.Sprintf("config: unsupported setting kind %v", f.kind))
		}
	}
}

// Merge copies every setting of file whose flag was not given on the
// command line parsed by fs.
func (s *Settings) Merge(fs *flag.FlagSet, file *Settings) {
	given := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) {
		given[fl.Name] = true
	})

	dst := reflect.ValueOf(s).Elem()
	src := reflect.ValueOf(file).Elem()
	for _, f := range settingsFields {
		if given[f.flag] {
			continue
		}
		dst.Field(f.index).Set(src.Field(f.index))
	}
}

// Display writes the settings, one per line.
func (s *Settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for _, f := range settingsFields {
		v := value.Field(f.index)
		var text string
		switch f.kind {
		case reflect.String:
			text = fmt.Sprintf("    %-10s %q", f.name, v.String())
		default:
			text = fmt.Sprintf("    %-10s %v", f.name, v.Interface())
		}
		fmt.Fprintf(w, "%-32s (%s)\n", text, f.doc)
	}
}

// Load decodes TOML settings from r over s. Keys that name no setting
// are rejected.
func Load(r io.Reader, s *Settings) (err error) {
	md, err := toml.NewDecoder(r).Decode(s)
	if err != nil {
		err = errors.Wrap(err, "config decode failed")
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = ErrUnknownKey(undecoded[0].String())
		return
	}

	return
}

// LoadFile decodes the TOML settings file at path over s.
func LoadFile(path string, s *Settings) (err error) {
	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrap(err, "config open failed")
		return
	}
	defer file.Close()

	err = Load(file, s)
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}

	return
}

// Find returns the path of the first optable.toml in the local, user,
// or system configuration folders.
func Find() (path string, ok bool) {
	configDirs := configdir.New("ezrec", "optable")
	for _, folder := range configDirs.QueryFolders(configdir.All) {
		if folder.Exists(FileName) {
			path = filepath.Join(folder.Path, FileName)
			ok = true
			return
		}
	}

	return
}
