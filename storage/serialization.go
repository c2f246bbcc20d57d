// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/poiesic/docflow/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalJob serializes a Job to bytes.
func MarshalJob(job *core.Job) []byte {
	buf := make([]byte, core.JobMUS.Size(*job))
	core.JobMUS.Marshal(*job, buf)
	return buf
}

// UnmarshalJob deserializes a Job from bytes.
func UnmarshalJob(data []byte) (*core.Job, error) {
	job, _, err := core.JobMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// MarshalCheckpoint serializes a Checkpoint to bytes.
func MarshalCheckpoint(checkpoint *core.Checkpoint) []byte {
	buf := make([]byte, core.CheckpointMUS.Size(*checkpoint))
	core.CheckpointMUS.Marshal(*checkpoint, buf)
	return buf
}

// UnmarshalCheckpoint deserializes a Checkpoint from bytes.
func UnmarshalCheckpoint(data []byte) (*core.Checkpoint, error) {
	checkpoint, _, err := core.CheckpointMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}

// MarshalChunk serializes a Chunk to bytes.
func MarshalChunk(chunk *core.Chunk) []byte {
	buf := make([]byte, core.ChunkMUS.Size(*chunk))
	core.ChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(data []byte) (*core.Chunk, error) {
	chunk, _, err := core.ChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// MarshalImage serializes an Image to bytes.
func MarshalImage(image *core.Image) []byte {
	buf := make([]byte, core.ImageMUS.Size(*image))
	core.ImageMUS.Marshal(*image, buf)
	return buf
}

// UnmarshalImage deserializes an Image from bytes.
func UnmarshalImage(data []byte) (*core.Image, error) {
	image, _, err := core.ImageMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// MarshalProduct serializes a Product to bytes.
func MarshalProduct(product *core.Product) []byte {
	buf := make([]byte, core.ProductMUS.Size(*product))
	core.ProductMUS.Marshal(*product, buf)
	return buf
}

// UnmarshalProduct deserializes a Product from bytes.
func UnmarshalProduct(data []byte) (*core.Product, error) {
	product, _, err := core.ProductMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// MarshalAssessment serializes a QualityAssessment to bytes.
func MarshalAssessment(assessment *core.QualityAssessment) []byte {
	buf := make([]byte, core.QualityAssessmentMUS.Size(*assessment))
	core.QualityAssessmentMUS.Marshal(*assessment, buf)
	return buf
}

// UnmarshalAssessment deserializes a QualityAssessment from bytes.
func UnmarshalAssessment(data []byte) (*core.QualityAssessment, error) {
	assessment, _, err := core.QualityAssessmentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// MarshalReviewTask serializes a ReviewTask to bytes.
func MarshalReviewTask(task *core.ReviewTask) []byte {
	buf := make([]byte, core.ReviewTaskMUS.Size(*task))
	core.ReviewTaskMUS.Marshal(*task, buf)
	return buf
}

// UnmarshalReviewTask deserializes a ReviewTask from bytes.
func UnmarshalReviewTask(data []byte) (*core.ReviewTask, error) {
	task, _, err := core.ReviewTaskMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// MarshalEdge serializes a RelationshipEdge to bytes.
func MarshalEdge(edge *core.RelationshipEdge) []byte {
	buf := make([]byte, core.RelationshipEdgeMUS.Size(*edge))
	core.RelationshipEdgeMUS.Marshal(*edge, buf)
	return buf
}

// UnmarshalEdge deserializes a RelationshipEdge from bytes.
func UnmarshalEdge(data []byte) (*core.RelationshipEdge, error) {
	edge, _, err := core.RelationshipEdgeMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &edge, nil
}
