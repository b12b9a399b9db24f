package scene_test

import (
	"testing"

	"github.com/plus3/posekit/scene"
)

var benchAppearance = scene.Appearance{Geometry: scene.GeometryBox}

func BenchmarkCreate(b *testing.B) {
	store := scene.NewStore()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Create(scene.IdentityPose(), benchAppearance)
	}
}

func BenchmarkDelete(b *testing.B) {
	store := scene.NewStore()

	ids := make([]scene.ObjectId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = store.Create(scene.IdentityPose(), benchAppearance)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Delete(ids[i])
	}
}

func BenchmarkUpdatePose(b *testing.B) {
	store := scene.NewStore()
	id := store.Create(scene.IdentityPose(), benchAppearance)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.UpdatePose(id, func(p *scene.Pose) {
			p.Position[0] += 0.01
		})
	}
}

func BenchmarkObjects(b *testing.B) {
	store := scene.NewStore()
	for i := 0; i < 1000; i++ {
		store.Create(scene.IdentityPose(), benchAppearance)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range store.Objects() {
		}
	}
}
