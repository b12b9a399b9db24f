package scene

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// sceneFile is the on-disk YAML layout.
type sceneFile struct {
	Objects []objectFile `yaml:"objects"`
}

type objectFile struct {
	Id       ObjectId  `yaml:"id"`
	Position []float64 `yaml:"position,flow"`
	Rotation []float64 `yaml:"rotation,flow"`
	Scale    []float64 `yaml:"scale,flow"`
	Color    string    `yaml:"color"`
	Geometry string    `yaml:"geometry"`
}

// LoadFile reads a YAML scene file into a new Store.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	store, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	return store, nil
}

// Load decodes a YAML scene into a new Store.
func Load(r io.Reader) (*Store, error) {
	var file sceneFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}

	store := NewStore()
	for i, of := range file.Objects {
		obj, err := of.object()
		if err != nil {
			return nil, fmt.Errorf("scene: object %d: %w", i, err)
		}
		if err := store.Insert(obj); err != nil {
			return nil, fmt.Errorf("scene: object %d (id %d): %w", i, of.Id, err)
		}
	}
	return store, nil
}

// Save writes every object as YAML in ascending id order.
func (s *Store) Save(w io.Writer) error {
	var file sceneFile
	for obj := range s.Objects() {
		file.Objects = append(file.Objects, objectFile{
			Id:       obj.Id,
			Position: obj.Pose.Position[:],
			Rotation: obj.Pose.Rotation[:],
			Scale:    obj.Pose.Scale[:],
			Color:    "#" + hex.EncodeToString(obj.Appearance.Color[:]),
			Geometry: obj.Appearance.Geometry.String(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return enc.Close()
}

func (of objectFile) object() (Object, error) {
	obj := Object{Id: of.Id, Pose: IdentityPose()}

	var err error
	if obj.Pose.Position, err = vec3(of.Position, obj.Pose.Position); err != nil {
		return Object{}, fmt.Errorf("position: %w", err)
	}
	if obj.Pose.Rotation, err = vec3(of.Rotation, obj.Pose.Rotation); err != nil {
		return Object{}, fmt.Errorf("rotation: %w", err)
	}
	if obj.Pose.Scale, err = vec3(of.Scale, obj.Pose.Scale); err != nil {
		return Object{}, fmt.Errorf("scale: %w", err)
	}

	if of.Color != "" {
		if obj.Appearance.Color, err = parseColor(of.Color); err != nil {
			return Object{}, err
		}
	}
	if of.Geometry != "" {
		if obj.Appearance.Geometry, err = ParseGeometry(of.Geometry); err != nil {
			return Object{}, err
		}
	}
	return obj, nil
}

func vec3(values []float64, fallback mgl64.Vec3) (mgl64.Vec3, error) {
	if values == nil {
		return fallback, nil
	}
	if len(values) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want 3 components, got %d", len(values))
	}
	return mgl64.Vec3{values[0], values[1], values[2]}, nil
}

func parseColor(s string) ([3]uint8, error) {
	var c [3]uint8
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(raw) != 3 {
		return c, fmt.Errorf("invalid color %q, want #rrggbb", s)
	}
	copy(c[:], raw)
	return c, nil
}
