package gen

import (
	"path"
	"strings"

	"matprop-generator/internal/description"
)

const (
	checkBoundsSuffix = "_checkBounds"
	headerGuardSuffix = "_HH"
)

// SymbolName is the canonical exported identifier of a law:
// "<material>_<law>", or "<law>" when no material is given.
func SymbolName(material, law string) string {
	if material == "" {
		return law
	}

	return material + "_" + law
}

// FunctionName is the name of every evaluation entry point.
func (c InterfaceConfig) FunctionName(mp *description.MaterialProperty) string {
	return SymbolName(mp.Material, mp.Law)
}

// CheckBoundsFunctionName is the name of the boundary-validation entry point.
func (c InterfaceConfig) CheckBoundsFunctionName(mp *description.MaterialProperty) string {
	return SymbolName(mp.Material, mp.Law) + checkBoundsSuffix
}

// BaseName is the file name shared by the header and the source, without
// directory or extension.
func (c InterfaceConfig) BaseName(mp *description.MaterialProperty) string {
	return SymbolName(mp.Material, mp.Law) + c.FileSuffix
}

// HeaderPath is the header path relative to the output directory.
func (c InterfaceConfig) HeaderPath(mp *description.MaterialProperty) string {
	return path.Join(c.HeaderDir, c.BaseName(mp)+c.HeaderExt)
}

// SourcePath is the source path relative to the output directory.
func (c InterfaceConfig) SourcePath(mp *description.MaterialProperty) string {
	return path.Join(c.SourceDir, c.BaseName(mp)+c.SourceExt)
}

var guardReplacer = strings.NewReplacer(".", "_", "-", "_", "/", "_")

// HeaderGuard derives the include guard token from a header file name.
func HeaderGuard(fileName string) string {
	return guardReplacer.Replace(strings.ToUpper(fileName)) + headerGuardSuffix
}
