package encoder

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/adamnemecek/EncodingIndirectCommandBuffersOnTheCPU/common"
	"github.com/adamnemecek/EncodingIndirectCommandBuffersOnTheCPU/shadertypes"
)

// ShapeTransform is the CPU-side description of one shape's placement for a
// frame. The encoder expands it into the model, model-view-projection, and
// normal matrices of the shape's uniform record. Scale components must be
// non-zero; 1 is the neutral value.
type ShapeTransform struct {
	Position [3]float32 // world-space translation
	Rotation [3]float32 // Euler angles in radians, applied Y * X * Z
	Scale    [3]float32 // per-axis scale factors
}

// FrameEncoder fills the fixed per-frame buffers the indirect pipeline reads:
// the per-shape uniform array and the per-shape vertex-count array. The GPU
// replays pre-encoded draw commands against these buffers without CPU
// re-encoding, so the encoder is the only per-frame CPU work the pipeline
// needs. Writes must be complete before the frame's command buffer is
// committed; the encoder returns only after every slot is written.
type FrameEncoder interface {
	// EncodeUniforms builds the uniform record for every shape and marshals
	// the records into the fixed uniform array, shape i at byte offset
	// i*shadertypes.UniformsStride. Slots past len(shapes) stay zeroed.
	// Per-shape matrix work fans out across the encoder's worker pool.
	//
	// Parameters:
	//   - viewProj: combined view-projection matrix (16 elements, column-major)
	//   - cameraPos: world-space camera position, duplicated into every record
	//   - shapes: per-shape transforms, at most shadertypes.MaxShapes
	//
	// Returns:
	//   - []byte: shadertypes.UniformBufferLength bytes ready for GPU upload
	//   - error: nil on success, or an error on a short matrix or too many shapes
	EncodeUniforms(viewProj []float32, cameraPos [3]float32, shapes []ShapeTransform) ([]byte, error)

	// EncodeVertexCounts marshals the per-shape vertex counts into the array
	// the GPU reads when emitting draw calls, entry i for shape i.
	//
	// Parameters:
	//   - counts: per-shape vertex counts, at most shadertypes.MaxShapes
	//
	// Returns:
	//   - []byte: shadertypes.VertexCountBufferLength bytes ready for GPU upload
	//   - error: nil on success, or an error when there are too many counts
	EncodeVertexCounts(counts []uint32) ([]byte, error)
}

var _ FrameEncoder = &frameEncoderImpl{}

type frameEncoderImpl struct {
	// pool manages a bounded set of reusable goroutines for the per-shape
	// uniform prep. Workers are reused across frames (no goroutine spawn
	// overhead); idle workers exit after the configured timeout.
	pool    worker.DynamicWorkerPool
	workers int // stored so callers can log/inspect the configured count
}

func (e *frameEncoderImpl) EncodeUniforms(viewProj []float32, cameraPos [3]float32, shapes []ShapeTransform) ([]byte, error) {
	if len(viewProj) < 16 {
		return nil, fmt.Errorf("view-projection matrix too short: got %d elements, need 16", len(viewProj))
	}
	if len(shapes) > shadertypes.MaxShapes {
		return nil, fmt.Errorf("too many shapes: got %d, pipeline supports %d", len(shapes), shadertypes.MaxShapes)
	}

	buf := make([]byte, shadertypes.UniformBufferLength)

	// Parallel CPU prep — submit each shape's matrix work to the pool. A
	// WaitGroup provides the per-frame barrier since pool.Wait() blocks until
	// workers idle-exit, which is unsuitable for frame-rate workloads. Each
	// task owns a disjoint 192-byte slot of buf, so no further sync is needed.
	var wg sync.WaitGroup
	for i := range shapes {
		wg.Add(1)
		slot := i
		shape := shapes[slot]
		e.pool.SubmitTask(worker.Task{
			ID: slot,
			Do: func() (any, error) {
				defer wg.Done()

				var u shadertypes.GPUUniforms
				u.CameraPos = cameraPos
				common.BuildModelMatrix(u.ModelMatrix[:],
					shape.Position[0], shape.Position[1], shape.Position[2],
					shape.Rotation[0], shape.Rotation[1], shape.Rotation[2],
					shape.Scale[0], shape.Scale[1], shape.Scale[2],
				)
				common.Mul4(u.ModelViewProjectionMatrix[:], viewProj, u.ModelMatrix[:])
				common.NormalMatrix3(u.NormalMatrix[:], u.ModelMatrix[:])

				copy(buf[slot*shadertypes.UniformsStride:], u.Marshal())
				return nil, nil
			},
		})
	}
	wg.Wait()

	return buf, nil
}

func (e *frameEncoderImpl) EncodeVertexCounts(counts []uint32) ([]byte, error) {
	return shadertypes.MarshalVertexCounts(counts)
}
