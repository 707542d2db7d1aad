package registers

import (
	"fmt"

	"github.com/Manu343726/dis8086/pkg/utils"
)

type RegisterClassesDescriptor struct {
	classes []*RegisterClassDescriptor
}

// Returns the descriptor of a register class
func (d *RegisterClassesDescriptor) Class(rc RegisterClass) *RegisterClassDescriptor {
	return d.classes[rc]
}

// Returns all the register classes
func (d *RegisterClassesDescriptor) AllClasses() []*RegisterClassDescriptor {
	return d.classes
}

// Returns a register given its class and index. Equivalent to Class(class).Register(index)
func (d *RegisterClassesDescriptor) Register(class RegisterClass, index int) (*RegisterDescriptor, error) {
	return d.Class(class).Register(index)
}

// Returns a register given its name
func (d *RegisterClassesDescriptor) RegisterByName(name string) (*RegisterDescriptor, error) {
	for _, class := range d.AllClasses() {
		for _, register := range class.AllRegisters() {
			if register.Name == name {
				return register, nil
			}
		}
	}

	return nil, utils.MakeError(ErrUnknownRegister, "'%v'", name)
}

// Returns the register named by a 3 bit reg or r/m field, using the width (w) bit to pick the table
func (d *RegisterClassesDescriptor) DecodeRegister(field uint8, wide bool) (*RegisterDescriptor, error) {
	return d.Register(WidthRegisterClass(wide), int(field))
}

// Initializes a register classes descriptor with all the given register class descriptors
func NewRegisterClassesDescriptor(classes []*RegisterClassDescriptor) RegisterClassesDescriptor {
	classMap := utils.GenMap(classes, func(class *RegisterClassDescriptor) RegisterClass {
		return class.Class
	})

	ordered := make([]*RegisterClassDescriptor, TOTAL_REGISTER_CLASSES)

	for _, class := range utils.Iota(int(TOTAL_REGISTER_CLASSES), func(i int) RegisterClass { return RegisterClass(i) }) {
		descriptor, hasClass := classMap[class]
		if !hasClass {
			panic(fmt.Sprintf("missing entry for register class '%v' in registers classes descriptor. Make sure you've added an entry for all register classes in the NewRegisterClassesDescriptor() call", class))
		}

		if descriptor.TotalRegisters() != TotalRegistersPerClass {
			panic(fmt.Sprintf("register class '%v' must have exactly %v registers (one per 3 bit encoding), has %v", class, TotalRegistersPerClass, descriptor.TotalRegisters()))
		}

		ordered[class] = descriptor
	}

	return RegisterClassesDescriptor{
		classes: ordered,
	}
}
