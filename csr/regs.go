package csr

// The descriptor set: one Register value per control register, binding
// its CSR index to its access mode. This table is the single source of
// register identity; the per-register field views live in their own files
// and all go through these handles.
var (
	// Machine information registers.
	MVENDORID = Register{num: 0xf11, mode: ReadOnly}
	MARCHID   = Register{num: 0xf12, mode: ReadOnly}
	MIMPID    = Register{num: 0xf13, mode: ReadOnly}
	MHARTID   = Register{num: 0xf14, mode: ReadOnly}

	// Machine trap setup.
	MSTATUS    = Register{num: 0x300, mode: ReadWrite}
	MISA       = Register{num: 0x301, mode: ReadWrite}
	MEDELEG    = Register{num: 0x302, mode: ReadWrite}
	MIDELEG    = Register{num: 0x303, mode: ReadWrite}
	MIE        = Register{num: 0x304, mode: ReadWrite}
	MTVEC      = Register{num: 0x305, mode: ReadWrite}
	MCOUNTEREN = Register{num: 0x306, mode: ReadWrite}

	// Machine trap handling.
	MSCRATCH = Register{num: 0x340, mode: ReadWrite}
	MEPC     = Register{num: 0x341, mode: ReadWrite}
	MCAUSE   = Register{num: 0x342, mode: ReadWrite}
	MTVAL    = Register{num: 0x343, mode: ReadWrite}
	MIP      = Register{num: 0x344, mode: ReadWrite}

	// Machine counters.
	MCYCLE   = Register{num: 0xb00, mode: ReadWrite}
	MINSTRET = Register{num: 0xb02, mode: ReadWrite}

	// Unprivileged counters, read-only shadows of the machine ones.
	CYCLE   = Register{num: 0xc00, mode: ReadOnly}
	TIME    = Register{num: 0xc01, mode: ReadOnly}
	INSTRET = Register{num: 0xc02, mode: ReadOnly}
)
