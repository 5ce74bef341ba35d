package encoder

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/adamnemecek/EncodingIndirectCommandBuffersOnTheCPU/common"
	"github.com/adamnemecek/EncodingIndirectCommandBuffersOnTheCPU/shadertypes"
)

const epsilon = 1e-5

func approxEq(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func identityMatrix() []float32 {
	m := make([]float32, 16)
	common.Identity(m)
	return m
}

func decodeSlot(t *testing.T, buf []byte, slot int) shadertypes.GPUUniforms {
	t.Helper()
	var u shadertypes.GPUUniforms
	if err := u.Unmarshal(buf[slot*shadertypes.UniformsStride:]); err != nil {
		t.Fatalf("slot %d Unmarshal() error = %v", slot, err)
	}
	return u
}

func TestEncodeUniformsSingleShape(t *testing.T) {
	enc := NewFrameEncoder(WithWorkers(2))

	cameraPos := [3]float32{1, 2, 3}
	shapes := []ShapeTransform{
		{Position: [3]float32{4, 5, 6}, Scale: [3]float32{1, 1, 1}},
	}
	buf, err := enc.EncodeUniforms(identityMatrix(), cameraPos, shapes)
	if err != nil {
		t.Fatalf("EncodeUniforms() error = %v", err)
	}
	if len(buf) != shadertypes.UniformBufferLength {
		t.Fatalf("buffer length = %d, want %d", len(buf), shadertypes.UniformBufferLength)
	}

	u := decodeSlot(t, buf, 0)
	if u.CameraPos != cameraPos {
		t.Errorf("CameraPos = %v, want %v", u.CameraPos, cameraPos)
	}
	if u.ModelMatrix[12] != 4 || u.ModelMatrix[13] != 5 || u.ModelMatrix[14] != 6 {
		t.Errorf("model translation = (%v, %v, %v), want (4, 5, 6)",
			u.ModelMatrix[12], u.ModelMatrix[13], u.ModelMatrix[14])
	}
	// Identity view-projection: MVP must equal the model matrix.
	if u.ModelViewProjectionMatrix != u.ModelMatrix {
		t.Errorf("MVP = %v, want model matrix %v", u.ModelViewProjectionMatrix, u.ModelMatrix)
	}
	// Unrotated unit scale: normal matrix is the identity in padded columns.
	for j := range 3 {
		for i := range 3 {
			want := float32(0)
			if i == j {
				want = 1
			}
			if !approxEq(u.NormalMatrix[j*4+i], want) {
				t.Errorf("normal matrix column %d row %d = %v, want %v", j, i, u.NormalMatrix[j*4+i], want)
			}
		}
	}
}

func TestEncodeUniformsAppliesViewProjection(t *testing.T) {
	enc := NewFrameEncoder(WithWorkers(1))

	viewProj := identityMatrix()
	viewProj[12] = 1 // translate by +1 in X

	shapes := []ShapeTransform{
		{Position: [3]float32{2, 0, 0}, Scale: [3]float32{1, 1, 1}},
	}
	buf, err := enc.EncodeUniforms(viewProj, [3]float32{}, shapes)
	if err != nil {
		t.Fatalf("EncodeUniforms() error = %v", err)
	}

	u := decodeSlot(t, buf, 0)
	if !approxEq(u.ModelViewProjectionMatrix[12], 3) {
		t.Errorf("MVP translation X = %v, want 3", u.ModelViewProjectionMatrix[12])
	}
}

func TestEncodeUniformsSlotPlacement(t *testing.T) {
	enc := NewFrameEncoder(WithWorkers(4))

	shapes := make([]ShapeTransform, shadertypes.MaxShapes)
	for i := range shapes {
		shapes[i] = ShapeTransform{
			Position: [3]float32{float32(i), 0, 0},
			Scale:    [3]float32{1, 1, 1},
		}
	}
	buf, err := enc.EncodeUniforms(identityMatrix(), [3]float32{}, shapes)
	if err != nil {
		t.Fatalf("EncodeUniforms() error = %v", err)
	}

	for i := range shapes {
		u := decodeSlot(t, buf, i)
		if u.ModelMatrix[12] != float32(i) {
			t.Errorf("slot %d model translation X = %v, want %v", i, u.ModelMatrix[12], float32(i))
		}
	}
}

func TestEncodeUniformsUnusedSlotsStayZero(t *testing.T) {
	enc := NewFrameEncoder(WithWorkers(2))

	shapes := []ShapeTransform{{Scale: [3]float32{1, 1, 1}}}
	buf, err := enc.EncodeUniforms(identityMatrix(), [3]float32{}, shapes)
	if err != nil {
		t.Fatalf("EncodeUniforms() error = %v", err)
	}
	for i := shadertypes.UniformsStride; i < len(buf); i++ {
		if buf[i] != 0 {
			t.Fatalf("unused slot byte %d = %#x, want 0", i, buf[i])
		}
	}
}

func TestEncodeUniformsTooManyShapes(t *testing.T) {
	enc := NewFrameEncoder(WithWorkers(1))
	shapes := make([]ShapeTransform, shadertypes.MaxShapes+1)
	if _, err := enc.EncodeUniforms(identityMatrix(), [3]float32{}, shapes); err == nil {
		t.Error("EncodeUniforms() past MaxShapes should return an error")
	}
}

func TestEncodeUniformsShortViewProjection(t *testing.T) {
	enc := NewFrameEncoder(WithWorkers(1))
	if _, err := enc.EncodeUniforms([]float32{1, 2, 3}, [3]float32{}, nil); err == nil {
		t.Error("EncodeUniforms() with a short view-projection matrix should return an error")
	}
}

func TestEncodeVertexCounts(t *testing.T) {
	enc := NewFrameEncoder(WithWorkers(1))
	buf, err := enc.EncodeVertexCounts([]uint32{36, 3})
	if err != nil {
		t.Fatalf("EncodeVertexCounts() error = %v", err)
	}
	if len(buf) != shadertypes.VertexCountBufferLength {
		t.Errorf("buffer length = %d, want %d", len(buf), shadertypes.VertexCountBufferLength)
	}
}
