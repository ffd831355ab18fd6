package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xacro-convert/internal/types"
)

func TestInspectReportsDirectives(t *testing.T) {
	dir := t.TempDir()
	writeXacro(t, dir, "common.xacro", `<robot><xacro:property name="base_mass" value="1.5"/></robot>`)
	source := writeXacro(t, dir, "robot.xacro", `<robot name="rover">`+
		`<include filename="common.xacro"/>`+
		`<xacro:property name="wheel_radius" value="0.05"/>`+
		`<property name="inertial"><box size="1 1 1"/></property>`+
		`<xacro:macro name="wheel"><link name="w"/></xacro:macro>`+
		`</robot>`)

	service := NewService()
	result, err := service.Inspect(t.Context(), InspectRequest{SourcePath: source})
	require.NoError(t, err)

	report := result.Report
	assert.Equal(t, "robot", report.RootTag)
	assert.Equal(t, []string{filepath.Join(dir, "common.xacro")}, report.Includes)
	assert.Equal(t, []string{"wheel"}, report.Macros)

	wantProps := []types.PropertyInfo{
		{Name: "base_mass", Value: "1.5"},
		{Name: "inertial", Value: `<property name="inertial">` + "\n" + `  <box size="1 1 1"/>` + "\n" + `</property>`, Complex: true},
		{Name: "wheel_radius", Value: "0.05"},
	}
	if diff := cmp.Diff(wantProps, report.Properties); diff != "" {
		t.Fatalf("unexpected properties (-want +got):\n%s", diff)
	}
}

func TestInspectMissingSource(t *testing.T) {
	service := NewService()
	_, err := service.Inspect(t.Context(), InspectRequest{
		SourcePath: filepath.Join(t.TempDir(), "ghost.xacro"),
	})
	require.Error(t, err)
}

func TestInspectEmptySource(t *testing.T) {
	service := NewService()
	_, err := service.Inspect(t.Context(), InspectRequest{})
	require.Error(t, err)
}
