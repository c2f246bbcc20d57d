package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/docflow/core"
)

// Key prefixes for different data types
const (
	jobPrefix          = "pipjob"
	jobDatePrefix      = "pipjobd"
	jobIDSeq           = "pipjobseq"
	checkpointPrefix   = "pipchk"
	chunkPrefix        = "chnk"
	chunkDocPrefix     = "chnkd"
	imagePrefix        = "img"
	imageDocPrefix     = "imgd"
	productPrefix      = "prd"
	productDocPrefix   = "prdd"
	assessmentPrefix   = "qas"
	assessmentEntPfx   = "qase"
	assessmentIDSeq    = "qasseq"
	reviewPrefix       = "rvt"
	reviewAssessPrefix = "rvta"
	reviewIDSeq        = "rvtseq"
	edgePrefix         = "rel"
)

// makeJobKey generates a key for a job by ID.
func makeJobKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", jobPrefix, id))
}

// makeJobDateKey generates a composite key for the job creation-time index.
// Format: prefix:timestamp:id
func makeJobDateKey(createdAt time.Time, id core.ID) []byte {
	return compositeKey(jobDatePrefix, uint64(createdAt.UnixMicro()), uint64(id))
}

// makeCheckpointKey generates a key for a job's checkpoint.
func makeCheckpointKey(jobID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", checkpointPrefix, jobID))
}

// makeChunkKey generates a key for a chunk by ID.
func makeChunkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkPrefix, id))
}

// makeChunkDocKey generates a composite key for the chunk document index.
// Format: prefix:documentID:index, so a prefix scan yields reading order.
func makeChunkDocKey(documentID core.ID, index int) []byte {
	return compositeKey(chunkDocPrefix, uint64(documentID), uint64(index))
}

// makeImageKey generates a key for an image by ID.
func makeImageKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", imagePrefix, id))
}

// makeImageDocKey generates a composite key for the image document index.
// Format: prefix:documentID:imageID
func makeImageDocKey(documentID, imageID core.ID) []byte {
	return compositeKey(imageDocPrefix, uint64(documentID), uint64(imageID))
}

// makeProductKey generates a key for a product by ID.
func makeProductKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", productPrefix, id))
}

// makeProductDocKey generates a composite key for the product document index.
// Format: prefix:documentID:productID
func makeProductDocKey(documentID, productID core.ID) []byte {
	return compositeKey(productDocPrefix, uint64(documentID), uint64(productID))
}

// makeAssessmentKey generates a key for an assessment by ID.
func makeAssessmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", assessmentPrefix, id))
}

// makeAssessmentEntityKey generates a composite key for the entity index.
// Format: prefix:entityID:assessmentID
func makeAssessmentEntityKey(entityID, assessmentID core.ID) []byte {
	return compositeKey(assessmentEntPfx, uint64(entityID), uint64(assessmentID))
}

// makeReviewKey generates a key for a review task by ID.
func makeReviewKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", reviewPrefix, id))
}

// makeReviewAssessmentKey generates a key for the assessment-to-task index.
// One task exists per assessment, so the key carries no task component.
func makeReviewAssessmentKey(assessmentID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", reviewAssessPrefix, assessmentID))
}

// makeEdgeKey generates a composite key for a relationship edge.
// Format: prefix:sourceID:targetID:type, so edges are unique per
// (source, target, type) and a source prefix scan yields all its edges.
func makeEdgeKey(sourceID, targetID core.ID, edgeType core.EdgeType) []byte {
	prefix := edgePrefix + ":"
	buf := make([]byte, len(prefix)+24)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(sourceID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(targetID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(edgeType))
	return buf
}

// makeEdgeSourcePrefix generates the scan prefix for all edges of a source.
func makeEdgeSourcePrefix(sourceID core.ID) []byte {
	prefix := edgePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(sourceID))
	return buf
}

// compositeKey builds prefix:a:b with both components written BigEndian so
// lexicographic sort matches numeric order.
func compositeKey(prefix string, a, b uint64) []byte {
	p := prefix + ":"
	buf := make([]byte, len(p)+16)
	offset := copy(buf, p)
	binary.BigEndian.PutUint64(buf[offset:], a)
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], b)
	return buf
}

// partialCompositeKey builds prefix:a for range scans over the index.
func partialCompositeKey(prefix string, a uint64) []byte {
	p := prefix + ":"
	buf := make([]byte, len(p)+8)
	offset := copy(buf, p)
	binary.BigEndian.PutUint64(buf[offset:], a)
	return buf
}
