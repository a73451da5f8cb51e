/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package origin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/arx/apis"
	"dirpx.dev/arx/origin"
)

type gadget struct{}

func (gadget) Fire() {}

func sampleHandler() {}

type renamedGadget struct{}

func (renamedGadget) VariantName() string { return "shiny" }

type scannedGadget struct{}

func (scannedGadget) VariantOrigin() apis.Origin {
	return apis.Origin{
		Kind:     apis.KindType,
		Name:     "ScannedGadget",
		QualPath: "factory/devices.ScannedGadget",
		Module:   "factory/devices",
		File:     "/src/factory/devices/gadget.go",
	}
}

type box[T any] struct{}

func TestDescribe_Type(t *testing.T) {
	org, err := origin.Describe(gadget{})
	require.NoError(t, err)

	require.Equal(t, apis.KindType, org.Kind)
	require.Equal(t, "gadget", org.Name)
	require.NotEmpty(t, org.Module)
	require.Equal(t, org.Module+".gadget", org.QualPath)
	// Source files are not resolvable for types.
	require.Empty(t, org.File)
}

func TestDescribe_PointerUnwrapsToNamedType(t *testing.T) {
	direct, err := origin.Describe(gadget{})
	require.NoError(t, err)

	g := &gadget{}
	ptr, err := origin.Describe(&g)
	require.NoError(t, err)
	require.Equal(t, direct, ptr)
}

func TestDescribe_Callable(t *testing.T) {
	org, err := origin.Describe(sampleHandler)
	require.NoError(t, err)

	require.Equal(t, apis.KindCallable, org.Kind)
	require.Equal(t, "sampleHandler", org.Name)
	require.NotEmpty(t, org.Module)
	require.True(t, strings.HasSuffix(org.QualPath, ".sampleHandler"))
	require.True(t, strings.HasSuffix(org.File, "origin_test.go"))
}

func TestDescribe_MethodValue(t *testing.T) {
	org, err := origin.Describe(gadget{}.Fire)
	require.NoError(t, err)

	require.Equal(t, apis.KindCallable, org.Kind)
	// Bound method symbols carry a "-fm" suffix that must not leak into
	// the simple name.
	require.Equal(t, "Fire", org.Name)
}

func TestDescribe_NamedOverride(t *testing.T) {
	org, err := origin.Describe(renamedGadget{})
	require.NoError(t, err)

	require.Equal(t, "shiny", org.Name)
	require.Equal(t, apis.KindType, org.Kind)
	require.NotEmpty(t, org.Module)
}

func TestDescribe_OriginatorOverride(t *testing.T) {
	org, err := origin.Describe(scannedGadget{})
	require.NoError(t, err)

	require.Equal(t, scannedGadget{}.VariantOrigin(), org)
}

func TestDescribe_GenericInstantiation(t *testing.T) {
	org, err := origin.Describe(box[int]{})
	require.NoError(t, err)
	require.Equal(t, "box", org.Name)
}

func TestDescribe_Underivable(t *testing.T) {
	_, err := origin.Describe(nil)
	require.ErrorIs(t, err, apis.ErrCannotDeriveName)

	_, err = origin.Describe(struct{}{})
	require.ErrorIs(t, err, apis.ErrCannotDeriveName)

	_, err = origin.Describe(map[string]int{})
	require.ErrorIs(t, err, apis.ErrCannotDeriveName)
}
