package shadertypes

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// GPUVertexSource is the canonical shader-side definition of the vertex
// record. Matches GPUVertex layout exactly (32-byte stride).
//
//go:embed assets/vertex.metal
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single vertex in the
// shared vertex pool. The shader side declares position as a 16-byte-aligned
// 3-float vector and texcoord as a packed 2-float pair sitting tight against
// it, so the payload ends at byte 20 and the arrayed stride rounds up to 32.
// Matches the shader-side Vertex struct layout exactly (see GPUVertexSource).
// Size: 32 bytes.
type GPUVertex struct {
	Position [3]float32 // offset  0: model-space position (12 bytes)
	TexCoord [2]float32 // offset 12: packed UV, no pad after position (8 bytes)
	_pad     [3]float32 // offset 20: pad to the 32-byte stride of the aligned vec3
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU
// upload. Pad lanes are written as zero.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, VertexStride)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.TexCoord[1]))
	binary.LittleEndian.PutUint32(buf[20:24], 0) // _pad[0]
	binary.LittleEndian.PutUint32(buf[24:28], 0) // _pad[1]
	binary.LittleEndian.PutUint32(buf[28:32], 0) // _pad[2]
	return buf
}

// Unmarshal fills the GPUVertex struct from a byte buffer previously produced
// by Marshal (or read back from a GPU-visible buffer).
//
// Parameters:
//   - buf: source buffer, must hold at least VertexStride bytes
//
// Returns:
//   - error: nil on success, or an error when the buffer is too short
func (g *GPUVertex) Unmarshal(buf []byte) error {
	if len(buf) < VertexStride {
		return fmt.Errorf("vertex buffer too short: got %d bytes, need %d", len(buf), VertexStride)
	}
	g.Position[0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	g.Position[1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	g.Position[2] = math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12]))
	g.TexCoord[0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16]))
	g.TexCoord[1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20]))
	return nil
}

// GPUUniformsSource is the canonical shader-side definition of the per-shape
// uniform record. Matches GPUUniforms layout exactly (192 bytes).
//
//go:embed assets/uniforms.metal
var GPUUniformsSource string

// GPUUniforms is the GPU-aligned per-shape uniform record filled by the CPU
// once per frame and indexed by shape index on the GPU. All matrices are
// column-major. The normal matrix is the inverse-transpose of the upper-left
// 3x3 of the model matrix; the shader side stores each of its three columns
// padded to 16 bytes, so it occupies 48 bytes as a flat [12]float32 with pad
// lanes at indices 3, 7 and 11.
// Matches the shader-side Uniforms struct layout exactly (see
// GPUUniformsSource). Size: 192 bytes.
type GPUUniforms struct {
	CameraPos                 [3]float32  // offset   0: world-space camera position (12 bytes)
	_pad0                     float32     // offset  12: vec3 alignment pad to 16
	ModelMatrix               [16]float32 // offset  16: model-to-world transform (64 bytes)
	ModelViewProjectionMatrix [16]float32 // offset  80: precomputed MVP (64 bytes)
	NormalMatrix              [12]float32 // offset 144: 3 columns of vec3, each padded to 16 (48 bytes)
}

// Size returns the size of the GPUUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (192)
func (g *GPUUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUUniforms struct into a byte buffer suitable for
// GPU upload. Pad lanes (including the normal matrix column pads) are written
// as zero.
//
// Returns:
//   - []byte: 192-byte buffer ready for GPU upload
func (g *GPUUniforms) Marshal() []byte {
	buf := make([]byte, UniformsStride)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.CameraPos[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.CameraPos[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.CameraPos[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // _pad0
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.ModelMatrix[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[80+i*4:], math.Float32bits(g.ModelViewProjectionMatrix[i]))
	}
	for i := range 12 {
		if i%4 == 3 {
			binary.LittleEndian.PutUint32(buf[144+i*4:], 0) // column pad lane
			continue
		}
		binary.LittleEndian.PutUint32(buf[144+i*4:], math.Float32bits(g.NormalMatrix[i]))
	}
	return buf
}

// Unmarshal fills the GPUUniforms struct from a byte buffer previously
// produced by Marshal (or read back from a GPU-visible buffer).
//
// Parameters:
//   - buf: source buffer, must hold at least UniformsStride bytes
//
// Returns:
//   - error: nil on success, or an error when the buffer is too short
func (g *GPUUniforms) Unmarshal(buf []byte) error {
	if len(buf) < UniformsStride {
		return fmt.Errorf("uniforms buffer too short: got %d bytes, need %d", len(buf), UniformsStride)
	}
	g.CameraPos[0] = math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	g.CameraPos[1] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	g.CameraPos[2] = math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12]))
	for i := range 16 {
		g.ModelMatrix[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[16+i*4:]))
	}
	for i := range 16 {
		g.ModelViewProjectionMatrix[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[80+i*4:]))
	}
	for i := range 12 {
		g.NormalMatrix[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[144+i*4:]))
	}
	return nil
}

// GPUArgumentBufferSource is the canonical shader-side definition of the
// packed argument buffer whose field IDs are the ArgumentBufferID values.
// This is where the sparse [[id(50)]] slot of the vertex-count array is
// declared on the shader side.
//
//go:embed assets/argument_buffer.metal
var GPUArgumentBufferSource string

// MarshalUniformArray marshals up to MaxShapes uniform records into the
// fixed-capacity uniform buffer the renderer allocates per frame. The record
// for shape i lands at byte offset i*UniformsStride; slots past len(shapes)
// stay zeroed so the GPU reads inert data for unused command slots.
//
// Parameters:
//   - shapes: the per-shape uniform records, at most MaxShapes of them
//
// Returns:
//   - []byte: UniformBufferLength-byte buffer ready for GPU upload
//   - error: nil on success, or an error when len(shapes) exceeds MaxShapes
func MarshalUniformArray(shapes []GPUUniforms) ([]byte, error) {
	if len(shapes) > MaxShapes {
		return nil, fmt.Errorf("too many shapes: got %d, pipeline supports %d", len(shapes), MaxShapes)
	}
	buf := make([]byte, UniformBufferLength)
	for i := range shapes {
		copy(buf[i*UniformsStride:], shapes[i].Marshal())
	}
	return buf, nil
}

// MarshalVertexCounts marshals the per-shape vertex counts into the
// fixed-capacity array bound at ArgumentBufferIDVertexNumBuffer. The GPU
// reads entry i when emitting the draw call for shape i; unused entries stay
// zero, producing empty draws.
//
// Parameters:
//   - counts: per-shape vertex counts, at most MaxShapes of them
//
// Returns:
//   - []byte: VertexCountBufferLength-byte buffer ready for GPU upload
//   - error: nil on success, or an error when len(counts) exceeds MaxShapes
func MarshalVertexCounts(counts []uint32) ([]byte, error) {
	if len(counts) > MaxShapes {
		return nil, fmt.Errorf("too many vertex counts: got %d, pipeline supports %d", len(counts), MaxShapes)
	}
	buf := make([]byte, VertexCountBufferLength)
	for i, c := range counts {
		binary.LittleEndian.PutUint32(buf[i*4:], c)
	}
	return buf, nil
}

// MarshalVertices marshals a vertex sequence into the shared vertex pool
// buffer bound at BufferIndexVertices / ArgumentBufferIDVertexBuffer.
//
// Parameters:
//   - vertices: the vertex records, in draw order
//
// Returns:
//   - []byte: len(vertices)*VertexStride bytes ready for GPU upload
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, len(vertices)*VertexStride)
	for i := range vertices {
		copy(buf[i*VertexStride:], vertices[i].Marshal())
	}
	return buf
}
