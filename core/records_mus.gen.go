// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ   = ord.NewMapSer[string, float64](ord.String, varint.Float64)
	mapjepmwh7hΣMsb6tp8t3eiOgΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	sliceEΣvPLZx1xJB314M3ZZToawΞΞ = ord.NewSliceSer[string](ord.String)
	sliceHBC9en3uTΣIp5b55xuΔc5AΞΞ = ord.NewSliceSer[Issue](IssueMUS)
	sliceT2sR7pGTΔEfy8bpvkLvRuAΞΞ = ord.NewSliceSer[Stage](StageMUS)
	sliceV54gNy7EXLTCyevYMEXPzAΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var JobStatusMUS = jobStatusMUS{}

type jobStatusMUS struct{}

func (s jobStatusMUS) Marshal(v JobStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s jobStatusMUS) Unmarshal(bs []byte) (v JobStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = JobStatus(tmp)
	return
}

func (s jobStatusMUS) Size(v JobStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s jobStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var StageStatusMUS = stageStatusMUS{}

type stageStatusMUS struct{}

func (s stageStatusMUS) Marshal(v StageStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s stageStatusMUS) Unmarshal(bs []byte) (v StageStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = StageStatus(tmp)
	return
}

func (s stageStatusMUS) Size(v StageStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s stageStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var EntityTypeMUS = entityTypeMUS{}

type entityTypeMUS struct{}

func (s entityTypeMUS) Marshal(v EntityType, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s entityTypeMUS) Unmarshal(bs []byte) (v EntityType, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = EntityType(tmp)
	return
}

func (s entityTypeMUS) Size(v EntityType) (size int) {
	return varint.Int.Size(int(v))
}

func (s entityTypeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var SeverityMUS = severityMUS{}

type severityMUS struct{}

func (s severityMUS) Marshal(v Severity, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s severityMUS) Unmarshal(bs []byte) (v Severity, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Severity(tmp)
	return
}

func (s severityMUS) Size(v Severity) (size int) {
	return varint.Int.Size(int(v))
}

func (s severityMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ReviewPriorityMUS = reviewPriorityMUS{}

type reviewPriorityMUS struct{}

func (s reviewPriorityMUS) Marshal(v ReviewPriority, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s reviewPriorityMUS) Unmarshal(bs []byte) (v ReviewPriority, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ReviewPriority(tmp)
	return
}

func (s reviewPriorityMUS) Size(v ReviewPriority) (size int) {
	return varint.Int.Size(int(v))
}

func (s reviewPriorityMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ReviewStatusMUS = reviewStatusMUS{}

type reviewStatusMUS struct{}

func (s reviewStatusMUS) Marshal(v ReviewStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s reviewStatusMUS) Unmarshal(bs []byte) (v ReviewStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ReviewStatus(tmp)
	return
}

func (s reviewStatusMUS) Size(v ReviewStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s reviewStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ReviewDecisionMUS = reviewDecisionMUS{}

type reviewDecisionMUS struct{}

func (s reviewDecisionMUS) Marshal(v ReviewDecision, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s reviewDecisionMUS) Unmarshal(bs []byte) (v ReviewDecision, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ReviewDecision(tmp)
	return
}

func (s reviewDecisionMUS) Size(v ReviewDecision) (size int) {
	return varint.Int.Size(int(v))
}

func (s reviewDecisionMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var EdgeTypeMUS = edgeTypeMUS{}

type edgeTypeMUS struct{}

func (s edgeTypeMUS) Marshal(v EdgeType, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s edgeTypeMUS) Unmarshal(bs []byte) (v EdgeType, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = EdgeType(tmp)
	return
}

func (s edgeTypeMUS) Size(v EdgeType) (size int) {
	return varint.Int.Size(int(v))
}

func (s edgeTypeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ValidationStatusMUS = validationStatusMUS{}

type validationStatusMUS struct{}

func (s validationStatusMUS) Marshal(v ValidationStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s validationStatusMUS) Unmarshal(bs []byte) (v ValidationStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ValidationStatus(tmp)
	return
}

func (s validationStatusMUS) Size(v ValidationStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s validationStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var DocumentRefMUS = documentRefMUS{}

type documentRefMUS struct{}

func (s documentRefMUS) Marshal(v DocumentRef, bs []byte) (n int) {
	n = ord.String.Marshal(v.Workspace, bs)
	n += ord.String.Marshal(v.URI, bs[n:])
	return n + ord.String.Marshal(v.ContentType, bs[n:])
}

func (s documentRefMUS) Unmarshal(bs []byte) (v DocumentRef, n int, err error) {
	v.Workspace, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.URI, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ContentType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentRefMUS) Size(v DocumentRef) (size int) {
	size = ord.String.Size(v.Workspace)
	size += ord.String.Size(v.URI)
	return size + ord.String.Size(v.ContentType)
}

func (s documentRefMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var StageMUS = stageMUS{}

type stageMUS struct{}

func (s stageMUS) Marshal(v Stage, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += StageStatusMUS.Marshal(v.Status, bs[n:])
	n += varint.Int.Marshal(v.Attempts, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.StartedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.EndedAt, bs[n:])
	n += ord.String.Marshal(v.Error, bs[n:])
	return n + mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Marshal(v.Metrics, bs[n:])
}

func (s stageMUS) Unmarshal(bs []byte) (v Stage, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Status, n1, err = StageStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Attempts, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StartedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EndedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Error, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metrics, n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s stageMUS) Size(v Stage) (size int) {
	size = ord.String.Size(v.Name)
	size += StageStatusMUS.Size(v.Status)
	size += varint.Int.Size(v.Attempts)
	size += raw.TimeUnixMicro.Size(v.StartedAt)
	size += raw.TimeUnixMicro.Size(v.EndedAt)
	size += ord.String.Size(v.Error)
	return size + mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Size(v.Metrics)
}

func (s stageMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = StageStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Skip(bs[n:])
	n += n1
	return
}

var JobMUS = jobMUS{}

type jobMUS struct{}

func (s jobMUS) Marshal(v Job, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Workspace, bs[n:])
	n += DocumentRefMUS.Marshal(v.Document, bs[n:])
	n += JobStatusMUS.Marshal(v.Status, bs[n:])
	n += sliceT2sR7pGTΔEfy8bpvkLvRuAΞΞ.Marshal(v.Stages, bs[n:])
	n += varint.Int.Marshal(v.Priority, bs[n:])
	n += varint.Int.Marshal(v.Cursor, bs[n:])
	n += mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Marshal(v.Metadata, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CompletedAt, bs[n:])
}

func (s jobMUS) Unmarshal(bs []byte) (v Job, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Workspace, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Document, n1, err = DocumentRefMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = JobStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Stages, n1, err = sliceT2sR7pGTΔEfy8bpvkLvRuAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Priority, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Cursor, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CompletedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s jobMUS) Size(v Job) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Workspace)
	size += DocumentRefMUS.Size(v.Document)
	size += JobStatusMUS.Size(v.Status)
	size += sliceT2sR7pGTΔEfy8bpvkLvRuAΞΞ.Size(v.Stages)
	size += varint.Int.Size(v.Priority)
	size += varint.Int.Size(v.Cursor)
	size += mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Size(v.Metadata)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	size += raw.TimeUnixMicro.Size(v.UpdatedAt)
	return size + raw.TimeUnixMicro.Size(v.CompletedAt)
}

func (s jobMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = DocumentRefMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = JobStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceT2sR7pGTΔEfy8bpvkLvRuAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CheckpointMUS = checkpointMUS{}

type checkpointMUS struct{}

func (s checkpointMUS) Marshal(v Checkpoint, bs []byte) (n int) {
	n = IDMUS.Marshal(v.JobId, bs)
	n += varint.Int.Marshal(v.Cursor, bs[n:])
	n += ord.String.Marshal(v.StageName, bs[n:])
	n += mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Marshal(v.Artifacts, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s checkpointMUS) Unmarshal(bs []byte) (v Checkpoint, n int, err error) {
	v.JobId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Cursor, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StageName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Artifacts, n1, err = mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s checkpointMUS) Size(v Checkpoint) (size int) {
	size = IDMUS.Size(v.JobId)
	size += varint.Int.Size(v.Cursor)
	size += ord.String.Size(v.StageName)
	size += mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Size(v.Artifacts)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s checkpointMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ChunkMUS = chunkMUS{}

type chunkMUS struct{}

func (s chunkMUS) Marshal(v Chunk, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.DocumentId, bs[n:])
	n += varint.Int.Marshal(v.Index, bs[n:])
	n += ord.String.Marshal(v.Contents, bs[n:])
	n += varint.Int.Marshal(v.Depth, bs[n:])
	n += sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Marshal(v.Vector, bs[n:])
	n += mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Marshal(v.Metrics, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s chunkMUS) Unmarshal(bs []byte) (v Chunk, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Index, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Contents, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Depth, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metrics, n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s chunkMUS) Size(v Chunk) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.DocumentId)
	size += varint.Int.Size(v.Index)
	size += ord.String.Size(v.Contents)
	size += varint.Int.Size(v.Depth)
	size += sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Size(v.Vector)
	size += mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Size(v.Metrics)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s chunkMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ImageMUS = imageMUS{}

type imageMUS struct{}

func (s imageMUS) Marshal(v Image, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.DocumentId, bs[n:])
	n += varint.Int.Marshal(v.Page, bs[n:])
	n += ord.String.Marshal(v.Caption, bs[n:])
	n += ord.String.Marshal(v.OCRText, bs[n:])
	n += ord.String.Marshal(v.Format, bs[n:])
	n += varint.Int.Marshal(v.Width, bs[n:])
	n += varint.Int.Marshal(v.Height, bs[n:])
	n += sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Marshal(v.Vector, bs[n:])
	n += mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Marshal(v.Metrics, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s imageMUS) Unmarshal(bs []byte) (v Image, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Page, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Caption, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OCRText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Format, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Width, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Height, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metrics, n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s imageMUS) Size(v Image) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.DocumentId)
	size += varint.Int.Size(v.Page)
	size += ord.String.Size(v.Caption)
	size += ord.String.Size(v.OCRText)
	size += ord.String.Size(v.Format)
	size += varint.Int.Size(v.Width)
	size += varint.Int.Size(v.Height)
	size += sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Size(v.Vector)
	size += mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Size(v.Metrics)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s imageMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ProductMUS = productMUS{}

type productMUS struct{}

func (s productMUS) Marshal(v Product, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.DocumentId, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Marshal(v.Attributes, bs[n:])
	n += sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Marshal(v.Vector, bs[n:])
	n += mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Marshal(v.Metrics, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s productMUS) Unmarshal(bs []byte) (v Product, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Attributes, n1, err = mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metrics, n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s productMUS) Size(v Product) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.DocumentId)
	size += ord.String.Size(v.Name)
	size += mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Size(v.Attributes)
	size += sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Size(v.Vector)
	size += mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Size(v.Metrics)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s productMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapjepmwh7hΣMsb6tp8t3eiOgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceV54gNy7EXLTCyevYMEXPzAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var IssueMUS = issueMUS{}

type issueMUS struct{}

func (s issueMUS) Marshal(v Issue, bs []byte) (n int) {
	n = ord.String.Marshal(v.Type, bs)
	n += SeverityMUS.Marshal(v.Severity, bs[n:])
	n += ord.String.Marshal(v.Metric, bs[n:])
	n += varint.Float64.Marshal(v.Value, bs[n:])
	n += varint.Float64.Marshal(v.Expected, bs[n:])
	return n + ord.Bool.Marshal(v.AutoFixable, bs[n:])
}

func (s issueMUS) Unmarshal(bs []byte) (v Issue, n int, err error) {
	v.Type, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Severity, n1, err = SeverityMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metric, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Value, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Expected, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AutoFixable, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (s issueMUS) Size(v Issue) (size int) {
	size = ord.String.Size(v.Type)
	size += SeverityMUS.Size(v.Severity)
	size += ord.String.Size(v.Metric)
	size += varint.Float64.Size(v.Value)
	size += varint.Float64.Size(v.Expected)
	return size + ord.Bool.Size(v.AutoFixable)
}

func (s issueMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = SeverityMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	return
}

var QualityAssessmentMUS = qualityAssessmentMUS{}

type qualityAssessmentMUS struct{}

func (s qualityAssessmentMUS) Marshal(v QualityAssessment, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.EntityId, bs[n:])
	n += EntityTypeMUS.Marshal(v.EntityType, bs[n:])
	n += mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Marshal(v.Metrics, bs[n:])
	n += varint.Float64.Marshal(v.OverallScore, bs[n:])
	n += ord.Bool.Marshal(v.PassesThresholds, bs[n:])
	n += ord.Bool.Marshal(v.NeedsHumanReview, bs[n:])
	n += sliceHBC9en3uTΣIp5b55xuΔc5AΞΞ.Marshal(v.Issues, bs[n:])
	n += sliceEΣvPLZx1xJB314M3ZZToawΞΞ.Marshal(v.Recommendations, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.AssessedAt, bs[n:])
}

func (s qualityAssessmentMUS) Unmarshal(bs []byte) (v QualityAssessment, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.EntityId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EntityType, n1, err = EntityTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metrics, n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OverallScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PassesThresholds, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.NeedsHumanReview, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Issues, n1, err = sliceHBC9en3uTΣIp5b55xuΔc5AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Recommendations, n1, err = sliceEΣvPLZx1xJB314M3ZZToawΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AssessedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s qualityAssessmentMUS) Size(v QualityAssessment) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.EntityId)
	size += EntityTypeMUS.Size(v.EntityType)
	size += mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Size(v.Metrics)
	size += varint.Float64.Size(v.OverallScore)
	size += ord.Bool.Size(v.PassesThresholds)
	size += ord.Bool.Size(v.NeedsHumanReview)
	size += sliceHBC9en3uTΣIp5b55xuΔc5AΞΞ.Size(v.Issues)
	size += sliceEΣvPLZx1xJB314M3ZZToawΞΞ.Size(v.Recommendations)
	return size + raw.TimeUnixMicro.Size(v.AssessedAt)
}

func (s qualityAssessmentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EntityTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapF9zRvhWgubhFUΣcAyΔlKΔAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceHBC9en3uTΣIp5b55xuΔc5AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceEΣvPLZx1xJB314M3ZZToawΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ReviewTaskMUS = reviewTaskMUS{}

type reviewTaskMUS struct{}

func (s reviewTaskMUS) Marshal(v ReviewTask, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.EntityId, bs[n:])
	n += EntityTypeMUS.Marshal(v.EntityType, bs[n:])
	n += IDMUS.Marshal(v.AssessmentId, bs[n:])
	n += ord.String.Marshal(v.ReviewType, bs[n:])
	n += ReviewPriorityMUS.Marshal(v.Priority, bs[n:])
	n += ReviewStatusMUS.Marshal(v.Status, bs[n:])
	n += QualityAssessmentMUS.Marshal(v.Assessment, bs[n:])
	n += ord.String.Marshal(v.Reviewer, bs[n:])
	n += ReviewDecisionMUS.Marshal(v.Decision, bs[n:])
	n += ord.String.Marshal(v.Notes, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CompletedAt, bs[n:])
}

func (s reviewTaskMUS) Unmarshal(bs []byte) (v ReviewTask, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.EntityId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EntityType, n1, err = EntityTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AssessmentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ReviewType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Priority, n1, err = ReviewPriorityMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = ReviewStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Assessment, n1, err = QualityAssessmentMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Reviewer, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Decision, n1, err = ReviewDecisionMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Notes, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CompletedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s reviewTaskMUS) Size(v ReviewTask) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.EntityId)
	size += EntityTypeMUS.Size(v.EntityType)
	size += IDMUS.Size(v.AssessmentId)
	size += ord.String.Size(v.ReviewType)
	size += ReviewPriorityMUS.Size(v.Priority)
	size += ReviewStatusMUS.Size(v.Status)
	size += QualityAssessmentMUS.Size(v.Assessment)
	size += ord.String.Size(v.Reviewer)
	size += ReviewDecisionMUS.Size(v.Decision)
	size += ord.String.Size(v.Notes)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	return size + raw.TimeUnixMicro.Size(v.CompletedAt)
}

func (s reviewTaskMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EntityTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ReviewPriorityMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ReviewStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = QualityAssessmentMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ReviewDecisionMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var RelationshipEdgeMUS = relationshipEdgeMUS{}

type relationshipEdgeMUS struct{}

func (s relationshipEdgeMUS) Marshal(v RelationshipEdge, bs []byte) (n int) {
	n = IDMUS.Marshal(v.SourceId, bs)
	n += IDMUS.Marshal(v.TargetId, bs[n:])
	n += EdgeTypeMUS.Marshal(v.Type, bs[n:])
	n += varint.Float64.Marshal(v.Confidence, bs[n:])
	n += varint.Float64.Marshal(v.Strength, bs[n:])
	n += ord.Bool.Marshal(v.Bidirectional, bs[n:])
	n += ord.String.Marshal(v.Label, bs[n:])
	n += ValidationStatusMUS.Marshal(v.Validation, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
}

func (s relationshipEdgeMUS) Unmarshal(bs []byte) (v RelationshipEdge, n int, err error) {
	v.SourceId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.TargetId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Type, n1, err = EdgeTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Confidence, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Strength, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Bidirectional, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Validation, n1, err = ValidationStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s relationshipEdgeMUS) Size(v RelationshipEdge) (size int) {
	size = IDMUS.Size(v.SourceId)
	size += IDMUS.Size(v.TargetId)
	size += EdgeTypeMUS.Size(v.Type)
	size += varint.Float64.Size(v.Confidence)
	size += varint.Float64.Size(v.Strength)
	size += ord.Bool.Size(v.Bidirectional)
	size += ord.String.Size(v.Label)
	size += ValidationStatusMUS.Size(v.Validation)
	return size + raw.TimeUnixMicro.Size(v.CreatedAt)
}

func (s relationshipEdgeMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EdgeTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ValidationStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
