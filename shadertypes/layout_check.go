package shadertypes

import "unsafe"

// Byte strides of the two shared records when arrayed in GPU-visible buffers.
// These are the numbers the shader side is compiled against.
const (
	// VertexStride is the arrayed size of one GPUVertex (20-byte payload
	// rounded up to the 16-byte alignment of the position vector).
	VertexStride = 32
	// UniformsStride is the arrayed size of one GPUUniforms record.
	UniformsStride = 192
)

// Advertised capacities of the fixed per-frame buffers the surrounding
// renderer allocates. Both hold exactly MaxShapes entries.
const (
	// UniformBufferLength is the byte length of the per-frame uniform array
	// bound at BufferIndexUniforms / ArgumentBufferIDUniformBuffer.
	UniformBufferLength = MaxShapes * UniformsStride
	// VertexCountBufferLength is the byte length of the per-shape
	// vertex-count array bound at ArgumentBufferIDVertexNumBuffer.
	VertexCountBufferLength = MaxShapes * 4
)

// Compile-time layout guards. Each pair converts a constant difference to
// uint in both directions; any drift between the Go structs and the
// shader-side layout makes one direction negative and the build fails here
// instead of as garbled geometry at runtime.
const (
	_ = uint(unsafe.Sizeof(GPUVertex{}) - VertexStride)
	_ = uint(VertexStride - unsafe.Sizeof(GPUVertex{}))
	_ = uint(unsafe.Offsetof(GPUVertex{}.Position) - 0)
	_ = uint(unsafe.Offsetof(GPUVertex{}.TexCoord) - 12)
	_ = uint(12 - unsafe.Offsetof(GPUVertex{}.TexCoord))

	_ = uint(unsafe.Sizeof(GPUUniforms{}) - UniformsStride)
	_ = uint(UniformsStride - unsafe.Sizeof(GPUUniforms{}))
	_ = uint(unsafe.Offsetof(GPUUniforms{}.CameraPos) - 0)
	_ = uint(unsafe.Offsetof(GPUUniforms{}.ModelMatrix) - 16)
	_ = uint(16 - unsafe.Offsetof(GPUUniforms{}.ModelMatrix))
	_ = uint(unsafe.Offsetof(GPUUniforms{}.ModelViewProjectionMatrix) - 80)
	_ = uint(80 - unsafe.Offsetof(GPUUniforms{}.ModelViewProjectionMatrix))
	_ = uint(unsafe.Offsetof(GPUUniforms{}.NormalMatrix) - 144)
	_ = uint(144 - unsafe.Offsetof(GPUUniforms{}.NormalMatrix))

	// MaxShapes full uniform records must fit the advertised capacity.
	_ = uint(UniformBufferLength - MaxShapes*unsafe.Sizeof(GPUUniforms{}))
	_ = uint(VertexCountBufferLength - MaxShapes*4)
)
