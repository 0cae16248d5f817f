/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package blockdef

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/mdschema/pkg/metadata"
)

// Parses block definition DSL content. Source name is used in error positions.
func Parse(source, content string) (*Definition, error) {
	return parseDSL(source, content)
}

// Loads block definition from YAML document.
func LoadYAML(source string, data []byte) (*Definition, error) {
	return loadYAML(source, data)
}

// Loads block definition from JSON document.
func LoadJSON(source string, data []byte) (*Definition, error) {
	return loadJSON(source, data)
}

// Reads and parses block definition file. Format is chosen by file extension,
// see DSLFileExt, YAMLFileExt, YMLFileExt and JSONFileExt.
func ParseFile(fileName string) (*Definition, error) {
	if !IsDefinitionFile(fileName) {
		return nil, metadata.ErrUnsupported("file «%s» extension", fileName)
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return parseBytes(filepath.Base(fileName), data)
}

// Parses all block definition files from specified FS directory. Files are
// processed in directory order, other files are skipped.
func ParseFS(fs IReadFS, dir string) ([]*Definition, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*Definition, 0)
	for _, entry := range entries {
		if entry.IsDir() || !IsDefinitionFile(entry.Name()) {
			continue
		}
		data, err := fs.ReadFile(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		def, err := parseBytes(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, ErrDirContainsNoDefinitions
	}
	return defs, nil
}

// Returns is file name has one of block definition extensions
func IsDefinitionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case DSLFileExt, YAMLFileExt, YMLFileExt, JSONFileExt:
		return true
	}
	return false
}

func parseBytes(source string, data []byte) (def *Definition, err error) {
	switch strings.ToLower(filepath.Ext(source)) {
	case YAMLFileExt, YMLFileExt:
		def, err = loadYAML(source, data)
	case JSONFileExt:
		def, err = loadJSON(source, data)
	default:
		def, err = parseDSL(source, string(data))
	}
	if err == nil && logger.IsVerbose() {
		logger.Verbose("block definition «" + def.name + "» parsed from " + source)
	}
	return def, err
}
