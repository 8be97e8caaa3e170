package core

import (
	"path/filepath"
	"strconv"
	"strings"
)

const moduleSuffix = ".module.css"

// ModuleNameForPath turns "css/header.module.css" into "Header".
func ModuleNameForPath(path string) string {
	name := filepath.Base(filepath.ToSlash(path))
	name = strings.TrimSuffix(name, moduleSuffix)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." {
		return "Module"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func ScopedClassName(module, local, hash string) string {
	return module + "_" + local + "__" + hash
}

// AssetName fingerprints base with the content hash: styles.css -> styles.<hash>.css.
func AssetName(base string, content []byte) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + HashContent(content) + ext
}

// IsAssetName reports whether name is base fingerprinted by AssetName.
func IsAssetName(base, name string) bool {
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext) + "."
	if len(name) <= len(prefix)+len(ext) || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
		return false
	}
	hash := name[len(prefix) : len(name)-len(ext)]
	if strings.ToLower(hash) != hash {
		return false
	}
	_, err := strconv.ParseUint(hash, 36, 32)
	return err == nil
}
