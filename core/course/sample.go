package course

// SampleCatalog is the built-in catalog served when the relational store
// has no course rows or is unreachable. Order is display order.
func SampleCatalog() []Course {
	return []Course{
		{ID: 1, Title: "CCNA 200-301: Fundamentos de Redes", Author: "Laura Martínez", Price: 299.99, ListPrice: 399.99, ImageRef: "Imagenes/ccna.jpg", Category: "Cisco", Duration: "40h", StudentCount: "1,200+"},
		{ID: 2, Title: "Ethical Hacking y Pentesting", Author: "Carlos Herrera", Price: 349.99, ListPrice: 449.99, ImageRef: "Imagenes/curso2.jpg", Category: "Ciberseguridad", Duration: "35h", StudentCount: "850+"},
		{ID: 3, Title: "Seguridad en Redes Empresariales", Author: "Ana Torres", Price: 279.99, ListPrice: 379.99, ImageRef: "Imagenes/curso3.jpg", Category: "Seguridad", Duration: "30h", StudentCount: "650+"},
		{ID: 4, Title: "Cloud Security AWS/Azure", Author: "Miguel Santos", Price: 399.99, ListPrice: 499.99, ImageRef: "Imagenes/curso4.jpg", Category: "Cloud", Duration: "45h", StudentCount: "920+"},
		{ID: 5, Title: "FortiGate Firewall Administration", Author: "Sofia Rodriguez", Price: 259.99, ListPrice: 359.99, ImageRef: "Imagenes/curso5.jpg", Category: "Firewall", Duration: "25h", StudentCount: "580+"},
		{ID: 6, Title: "Python para Administradores de Red", Author: "David Castro", Price: 229.99, ListPrice: 329.99, ImageRef: "Imagenes/curso6.jpg", Category: "Programación", Duration: "35h", StudentCount: "750+"},
		{ID: 7, Title: "Redes Inalámbricas y WiFi 6", Author: "Valeria León", Price: 199.99, ListPrice: 299.99, ImageRef: "Imagenes/curso7.jpg", Category: "Wireless", Duration: "28h", StudentCount: "620+"},
		{ID: 8, Title: "Monitoreo con Wireshark", Author: "Roberto Mendez", Price: 179.99, ListPrice: 249.99, ImageRef: "Imagenes/curso8.jpg", Category: "Monitoreo", Duration: "20h", StudentCount: "480+"},
		{ID: 9, Title: "Docker y Containers Networking", Author: "Elena Vasquez", Price: 319.99, ListPrice: 419.99, ImageRef: "Imagenes/curso9.jpg", Category: "DevOps", Duration: "32h", StudentCount: "390+"},
		{ID: 10, Title: "Kubernetes Network Policies", Author: "Fernando Ramos", Price: 369.99, ListPrice: 469.99, ImageRef: "Imagenes/curso10.jpg", Category: "DevOps", Duration: "38h", StudentCount: "310+"},
		{ID: 11, Title: "OSPF y BGP Routing Protocols", Author: "Gabriela Muñoz", Price: 289.99, ListPrice: 389.99, ImageRef: "Imagenes/curso11.jpg", Category: "Routing", Duration: "42h", StudentCount: "420+"},
		{ID: 12, Title: "Network Automation con Ansible", Author: "Jorge Palacios", Price: 339.99, ListPrice: 439.99, ImageRef: "Imagenes/curso12.jpg", Category: "Automatización", Duration: "36h", StudentCount: "290+"},
	}
}
