package source

import "plandiff/model"

// Memory is an in-memory Source. It serves tests and callers that have
// already parsed a drawing through an external reader. The builder methods
// return the receiver for chaining; once handed to the pipeline a Memory
// must not be mutated.
type Memory struct {
	name       string
	insUnits   int
	layers     []model.Layer
	modelSpace []Record
	blocks     map[string][]Record
	layouts    []memoryLayout
}

type memoryLayout struct {
	name    string
	records []Record
}

func (l memoryLayout) Name() string      { return l.name }
func (l memoryLayout) Records() []Record { return l.records }

// NewMemory creates an empty in-memory source.
func NewMemory(name string) *Memory {
	return &Memory{
		name:   name,
		blocks: make(map[string][]Record),
	}
}

// SetInsertionUnits sets the drawing-level units code.
func (m *Memory) SetInsertionUnits(code int) *Memory {
	m.insUnits = code
	return m
}

// AddLayer appends a layer table entry.
func (m *Memory) AddLayer(layer model.Layer) *Memory {
	m.layers = append(m.layers, layer)
	return m
}

// Add appends records to model space, preserving order.
func (m *Memory) Add(records ...Record) *Memory {
	m.modelSpace = append(m.modelSpace, records...)
	return m
}

// DefineBlock registers a named block definition, replacing any previous
// definition of the same name.
func (m *Memory) DefineBlock(name string, records ...Record) *Memory {
	m.blocks[name] = records
	return m
}

// AddLayout appends a paper-space layout.
func (m *Memory) AddLayout(name string, records ...Record) *Memory {
	m.layouts = append(m.layouts, memoryLayout{name: name, records: records})
	return m
}

func (m *Memory) Name() string        { return m.name }
func (m *Memory) InsertionUnits() int { return m.insUnits }

func (m *Memory) Layers() []model.Layer {
	return m.layers
}

func (m *Memory) ModelSpace() []Record {
	return m.modelSpace
}

func (m *Memory) Block(name string) ([]Record, bool) {
	records, ok := m.blocks[name]
	return records, ok
}

func (m *Memory) Layouts() []Layout {
	out := make([]Layout, len(m.layouts))
	for i, l := range m.layouts {
		out[i] = l
	}
	return out
}
