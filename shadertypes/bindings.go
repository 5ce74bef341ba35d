package shadertypes

// MaxShapes is the maximum number of distinct shapes the pipeline can draw in
// one frame. It bounds the indirect command buffer length, the uniform buffer
// array length, and the per-shape entries of the argument buffer. Changing it
// requires a coordinated rebuild of the shaders and every fixed-size
// allocation sized from it.
const MaxShapes = 16

// BufferIndex is a top-level buffer binding slot shared between the CPU buffer
// set calls and the shader's buffer arguments. The numeric values are part of
// the CPU/GPU ABI and must not be renumbered without changing the shaders in
// lockstep.
type BufferIndex uint32

const (
	// BufferIndexVertices is the slot of the shared vertex pool.
	BufferIndexVertices BufferIndex = 0
	// BufferIndexUniforms is the slot of the per-shape uniform array.
	BufferIndexUniforms BufferIndex = 1
)

// String returns a human-readable name for the buffer index.
//
// Returns:
//   - string: the slot name, or "Unknown" for values outside the registry
func (b BufferIndex) String() string {
	switch b {
	case BufferIndexVertices:
		return "Vertices"
	case BufferIndexUniforms:
		return "Uniforms"
	default:
		return "Unknown"
	}
}

// TextureIndex is a texture binding slot shared between the CPU texture set
// calls and the shader's texture arguments.
type TextureIndex uint32

const (
	// TextureIndexBaseColor is the slot of the base color texture.
	TextureIndexBaseColor TextureIndex = 0
)

// String returns a human-readable name for the texture index.
//
// Returns:
//   - string: the slot name, or "Unknown" for values outside the registry
func (t TextureIndex) String() string {
	switch t {
	case TextureIndexBaseColor:
		return "BaseColor"
	default:
		return "Unknown"
	}
}

// ArgumentBufferID is the numeric field ID of one entry inside the packed
// shader-visible argument buffer (see GPUArgumentBufferSource for the
// shader-side declaration). IDs name fields of that buffer, not indices into
// a resource heap.
//
// The first four IDs are contiguous from zero. VertexNumBuffer sits at 50 to
// leave a deliberate gap so the contiguous block can grow without collision;
// the shader declares the field at [[id(50)]], so the value is opaque ABI and
// must be preserved literally.
type ArgumentBufferID uint32

const (
	// ArgumentBufferIDICB is the indirect command buffer the GPU executes,
	// one pre-encoded draw command per shape.
	ArgumentBufferIDICB ArgumentBufferID = 0
	// ArgumentBufferIDUniformBuffer is the array of GPUUniforms records,
	// one per shape, indexed by shape index.
	ArgumentBufferIDUniformBuffer ArgumentBufferID = 1
	// ArgumentBufferIDDepth is the depth resource referenced by per-shape
	// commands.
	ArgumentBufferIDDepth ArgumentBufferID = 2
	// ArgumentBufferIDVertexBuffer is the shared pool of GPUVertex records
	// referenced by all shapes.
	ArgumentBufferIDVertexBuffer ArgumentBufferID = 3
	// ArgumentBufferIDVertexNumBuffer is the array of per-shape vertex
	// counts, read when emitting draw calls on-GPU.
	ArgumentBufferIDVertexNumBuffer ArgumentBufferID = 50
)

// String returns a human-readable name for the argument buffer field ID.
//
// Returns:
//   - string: the field name, or "Unknown" for values outside the registry
func (a ArgumentBufferID) String() string {
	switch a {
	case ArgumentBufferIDICB:
		return "ICB"
	case ArgumentBufferIDUniformBuffer:
		return "UniformBuffer"
	case ArgumentBufferIDDepth:
		return "Depth"
	case ArgumentBufferIDVertexBuffer:
		return "VertexBuffer"
	case ArgumentBufferIDVertexNumBuffer:
		return "VertexNumBuffer"
	default:
		return "Unknown"
	}
}

// VertexBufferIndex is a vertex-stage buffer binding slot.
type VertexBufferIndex uint32

const (
	// VertexBufferIndexArgument is the slot at which the argument buffer is
	// bound to the vertex stage.
	VertexBufferIndexArgument VertexBufferIndex = 0
)

// String returns a human-readable name for the vertex-stage buffer index.
//
// Returns:
//   - string: the slot name, or "Unknown" for values outside the registry
func (v VertexBufferIndex) String() string {
	switch v {
	case VertexBufferIndexArgument:
		return "Argument"
	default:
		return "Unknown"
	}
}
