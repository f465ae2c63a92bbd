package inventory

// SampleNetwork builds the reference two-server inventory
func SampleNetwork() *Network {
	return NewNetwork("MISIS network").
		AddComputer(
			NewComputer("server1.misis.ru").
				AddAddress("192.168.1.1").
				AddComponent(NewCPU(4, 2500)).
				AddComponent(NewMemory(16000)),
		).
		AddComputer(
			NewComputer("server2.misis.ru").
				AddAddress("10.0.0.1").
				AddComponent(NewCPU(8, 3200)).
				AddComponent(
					NewDisk(Magnetic, 2000).
						AddPartition(500, "system").
						AddPartition(1500, "data"),
				),
		)
}
