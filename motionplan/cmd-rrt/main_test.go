package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/rrt/motionplan"
)

func decodePNG(t *testing.T, path string) (int, int) {
	t.Helper()
	//nolint:gosec
	f, err := os.Open(path)
	test.That(t, err, test.ShouldBeNil)
	defer f.Close()
	img, err := png.Decode(f)
	test.That(t, err, test.ShouldBeNil)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.json")
	test.That(t, os.WriteFile(path, []byte(content), 0o600), test.ShouldBeNil)
	return path
}

func TestRunDefault(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")
	err := newApp().Run([]string{"cmd-rrt", "--iterations", "50", "--depth-colors", "--out", out})
	test.That(t, err, test.ShouldBeNil)
	width, height := decodePNG(t, out)
	test.That(t, width, test.ShouldEqual, defaultWidth)
	test.That(t, height, test.ShouldEqual, defaultHeight)
}

func TestRunLogLevel(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")
	err := newApp().Run([]string{"cmd-rrt", "--iterations", "5", "--log-level", "DEBUG", "--out", out})
	test.That(t, err, test.ShouldBeNil)

	err = newApp().Run([]string{"cmd-rrt", "--iterations", "5", "--log-level", "loud", "--out", out})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "loud")
}

func TestRunStreamWithDepthColors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")
	err := newApp().Run([]string{"cmd-rrt", "--stream", "--depth-colors", "--iterations", "5", "--out", out})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot be combined")
	_, err = os.Stat(out)
	test.That(t, os.IsNotExist(err), test.ShouldBeTrue)
}

func TestRunStreamAndPrint(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")
	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	err := app.Run([]string{
		"cmd-rrt", "--stream", "--print",
		"--iterations", "20", "--step", "5", "--seed", "4",
		"--width", "200", "--height", "100", "--start", "10", "--start", "10",
		"--out", out,
	})
	test.That(t, err, test.ShouldBeNil)

	width, height := decodePNG(t, out)
	test.That(t, width, test.ShouldEqual, 200)
	test.That(t, height, test.ShouldEqual, 100)

	printed := strings.ToLower(stdout.String())
	test.That(t, printed, test.ShouldContainSubstring, "parent")
	test.That(t, printed, test.ShouldContainSubstring, "edges")
	test.That(t, printed, test.ShouldContainSubstring, "10.000")
}

func TestRunConfigFile(t *testing.T) {
	t.Run("interval domain", func(t *testing.T) {
		path := writeConfig(t, `{
			"step_size": 0.5,
			"iterations": 30,
			"domain": {"mode": "interval", "limits": [{"min": -5, "max": 5}, {"min": -5, "max": 5}]}
		}`)
		out := filepath.Join(t.TempDir(), "tree.png")
		test.That(t, newApp().Run([]string{"cmd-rrt", "-c", path, "--out", out}), test.ShouldBeNil)
		_, err := os.Stat(out)
		test.That(t, err, test.ShouldBeNil)
	})

	t.Run("domain too constrained still draws", func(t *testing.T) {
		path := writeConfig(t, `{
			"step_size": 2,
			"iterations": 3,
			"max_sample_attempts": 10,
			"domain": {"mode": "interval", "limits": [{"min": 0, "max": 1}]}
		}`)
		out := filepath.Join(t.TempDir(), "tree.png")
		err := newApp().Run([]string{"cmd-rrt", "-c", path, "--start", "0", "--out", out})
		test.That(t, errors.Is(err, motionplan.ErrDomainTooConstrained), test.ShouldBeTrue)
		_, err = os.Stat(out)
		test.That(t, err, test.ShouldBeNil)
	})

	t.Run("missing iterations", func(t *testing.T) {
		path := writeConfig(t, `{"step_size": 1, "domain": {"mode": "scale", "scale": [10, 10]}}`)
		err := newApp().Run([]string{"cmd-rrt", "-c", path})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "iterations")
	})

	t.Run("bad json", func(t *testing.T) {
		path := writeConfig(t, `{"step_size": `)
		err := newApp().Run([]string{"cmd-rrt", "-c", path})
		test.That(t, err, test.ShouldNotBeNil)
	})
}
