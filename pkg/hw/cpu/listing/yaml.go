package listing

import (
	"io"

	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc"
	"github.com/Manu343726/dis8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/dis8086/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Structured representation of a disassembled program
type Document struct {
	Source       string                `yaml:"source,omitempty"`
	Bits         int                   `yaml:"bits"`
	Size         int                   `yaml:"size"`
	Instructions []InstructionDocument `yaml:"instructions"`
}

type InstructionDocument struct {
	Offset      int             `yaml:"offset"`
	Bytes       string          `yaml:"bytes"`
	Variant     string          `yaml:"variant"`
	Text        string          `yaml:"text"`
	Mnemonic    string          `yaml:"mnemonic"`
	Destination OperandDocument `yaml:"destination"`
	Source      OperandDocument `yaml:"source"`
}

type OperandDocument struct {
	Kind  string `yaml:"kind"`
	Text  string `yaml:"text"`
	Value *int   `yaml:"value,omitempty"`
	Size  string `yaml:"size,omitempty"`
}

func newOperandDocument(operand *instructions.OperandValue) OperandDocument {
	doc := OperandDocument{
		Kind: operand.Kind().String(),
		Text: operand.String(),
	}

	switch operand.Kind() {
	case instructions.OperandKind_Register:
		doc.Size = operand.Register().ValueType().SizeKeyword()
	case instructions.OperandKind_Immediate:
		value := operand.Immediate().Int()
		doc.Value = &value
		doc.Size = operand.Immediate().Type().SizeKeyword()
	case instructions.OperandKind_DirectAddress:
		value := int(operand.DirectAddress().Address)
		doc.Value = &value
	case instructions.OperandKind_EffectiveAddress:
		if address := operand.EffectiveAddress(); address.DisplacementBytes > 0 {
			value := address.Displacement.Int()
			doc.Value = &value
		}
	}

	return doc
}

// NewDocument builds the structured representation of a program
func NewDocument(source string, p *mc.Program) Document {
	return Document{
		Source: source,
		Bits:   16,
		Size:   p.Size(),
		Instructions: utils.Map(p.Instructions, func(instr *instructions.Instruction) InstructionDocument {
			return InstructionDocument{
				Offset:      instr.Offset,
				Bytes:       utils.FormatBytesHex(instr.Bytes),
				Variant:     instr.Descriptor.OpCode.Variant,
				Text:        instr.String(),
				Mnemonic:    instr.Mnemonic(),
				Destination: newOperandDocument(&instr.Destination),
				Source:      newOperandDocument(&instr.Source),
			}
		}),
	}
}

// WriteYAML writes the program as a YAML document
func WriteYAML(w io.Writer, p *mc.Program, opts Options) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(NewDocument(opts.Source, p)); err != nil {
		return err
	}

	return encoder.Close()
}
