package instructions

// Represents the role an operand has within an instruction
type OperandRole uint

const (
	OperandRole_Destination OperandRole = iota
	OperandRole_Source
)

func (o OperandRole) String() string {
	switch o {
	case OperandRole_Destination:
		return "Destination"
	case OperandRole_Source:
		return "Source"
	}

	panic("unreachable")
}
