package vm_test

// @generated from vm_test.go

//go:generate go run ../../scripts/gen_vm_expects.go -- vm_test.go vm_expects_gen_test.go

func withVMVar(name string, val int) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withVar(name, val)
	}
}

func withVMSlots(slots ...int) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withSlots(slots...)
	}
}

func withVMStdin(input string) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.withStdin(input)
	}
}

func expectVMVar(name string, want int) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.expectVar(name, want)
	}
}
