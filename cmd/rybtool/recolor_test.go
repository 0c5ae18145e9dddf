package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-ryb/pkg/imaging"
)

func resetRecolorFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		recolorInvert = false
		recolorTint = ""
		recolorChannel = ""
		recolorWeight = 0.5
	})
}

func TestBuildTransformNoneChosen(t *testing.T) {
	resetRecolorFlags(t)

	_, err := buildTransform()
	assert.ErrorIs(t, err, errRecolorTransform)
}

func TestBuildTransformTooManyChosen(t *testing.T) {
	resetRecolorFlags(t)

	recolorInvert = true
	recolorChannel = "b"

	_, err := buildTransform()
	assert.ErrorIs(t, err, errRecolorTransform)
}

func TestBuildTransformInvert(t *testing.T) {
	resetRecolorFlags(t)

	recolorInvert = true

	fn, err := buildTransform()
	require.NoError(t, err)
	require.NotNil(t, fn)
}

func TestBuildTransformBadTint(t *testing.T) {
	resetRecolorFlags(t)

	recolorTint = "notacolor"

	_, err := buildTransform()
	assert.Error(t, err)
}

func TestParseChannel(t *testing.T) {
	t.Parallel()

	for value, expected := range map[string]imaging.ChannelIndex{
		"r":      imaging.ChannelRed,
		"red":    imaging.ChannelRed,
		"y":      imaging.ChannelYellow,
		"yellow": imaging.ChannelYellow,
		"b":      imaging.ChannelBlue,
		"blue":   imaging.ChannelBlue,
	} {
		got, err := parseChannel(value)
		require.NoError(t, err)
		assert.Equal(t, expected, got, value)
	}

	_, err := parseChannel("green")
	assert.Error(t, err)
}
