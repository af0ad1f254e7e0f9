package translate

// builtin holds English to Brazilian Portuguese contract phrases.
var builtin = map[string]string{
	// Titles
	"Let's get a probe into orbit":                            "Vamos colocar uma sonda em órbita",
	"Orbit the first artificial satellite":                    "Coloque o primeiro satélite artificial em órbita",
	"Orbit a probe and return it safely home":                 "Coloque uma sonda em órbita e retorne-a para casa em segurança",
	"Do an unmanned flyby":                                    "Faça um sobrevoo não tripulado",
	"Perform an unmanned":                                     "Realize um",
	"flyby mission":                                           "missão de sobrevoo",
	"Crash a probe on a planet":                               "Colida uma sonda em um planeta",
	"Crash a probe on a target":                               "Colida uma sonda em um alvo",
	"Crash a probe on":                                        "Colida uma sonda em",
	"on a target":                                             "em um alvo",
	"Orbit an unmanned satellite at another planet":           "Coloque um satélite não tripulado em órbita em outro planeta",
	"Put a probe in orbit around":                             "Coloque uma sonda em órbita ao redor de",
	"Put a probe in a polar orbit at":                         "Coloque uma sonda em órbita polar em",
	"Put a probe in a polar orbit at another planet":          "Coloque uma sonda em órbita polar em outro planeta",
	"Put a probe in a equatorial orbit at another planet":     "Coloque uma sonda em órbita equatorial em outro planeta",
	"Orbit the first satellite in an equatorial orbit around": "Coloque o primeiro satélite em órbita equatorial ao redor de",
	"Put a probe in a Kolniya orbit at a planet":              "Coloque uma sonda em órbita Kolniya em um planeta",
	"Orbit the first satellite in a Kolniya orbit around":     "Coloque o primeiro satélite em órbita Kolniya ao redor de",
	"Put a probe in a Tundra orbit at another planet":         "Coloque uma sonda em órbita Tundra em outro planeta",
	"Orbit the first satellite in a Tundra orbit around":      "Coloque o primeiro satélite em órbita Tundra ao redor de",
	"Land a probe on another planet":                          "Aterrisse uma sonda em outro planeta",
	"Land a probe on the":                                     "Aterrisse uma sonda em",
	"Land a probe at a specified target":                      "Aterrisse uma sonda em um alvo especificado",
	"at a specific location":                                  "em um local específico",

	// Descriptions
	"We want you to place a satellite in orbit around":                                                    "Queremos que você coloque um satélite em órbita ao redor de",
	"This will be a significant 'first' for our space program":                                            "Este será um 'primeiro' significativo para nosso programa espacial",
	"The satellite doesn't need to be anything fancy, just cobble something together and put it up there": "O satélite não precisa ser nada sofisticado, apenas monte algo e coloque lá em cima",
	"This will be a monumental achievement":                                                               "Esta será uma conquista monumental",
	"This will be a significant achievement for our space program":                                        "Esta será uma conquista significativa para nosso programa espacial",
	"We want to get larger, clearer closeup pictures":                                                     "Queremos obter fotos mais próximas, maiores e mais claras",
	"To do this, we need to send a probe to crash on":                                                     "Para fazer isso, precisamos enviar uma sonda para colidir em",

	// Synopsis
	"Complete the following": "Complete o seguinte",
	"Send a probe to space and get it into orbit around our homeworld":                      "Envie uma sonda para o espaço e coloque-a em órbita ao redor do nosso mundo natal",
	"Send a probe to space and get it into orbit around our homeworld and then get it back": "Envie uma sonda para o espaço e coloque-a em órbita ao redor do nosso mundo natal e depois traga-a de volta",
	"Send a probe to space within the SOI of":                                               "Envie uma sonda para o espaço dentro da esfera de influência de",
	"Launch an unmanned probe and have it crash onto the":                                   "Lance uma sonda não tripulada e faça-a colidir em",
	"Put a satellite in orbit around":                                                       "Coloque um satélite em órbita ao redor de",
	"Launch an unmanned probe and have it land on the":                                      "Lance uma sonda não tripulada e faça-a aterrissar em",

	// Completion messages
	"You did it": "Você conseguiu",
	"You've successfully gotten a probe into orbit":                      "Você conseguiu colocar uma sonda em órbita com sucesso",
	"You've successfully gotten a probe into orbit and returned it home": "Você conseguiu colocar uma sonda em órbita e trazê-la de volta para casa com sucesso",
	"We've send a probe on a":                                            "Enviamos uma sonda em um",
	"Future generations will remember this day":                          "Futuras gerações se lembrarão deste dia",
	"We've placed a satellite in orbit around":                           "Colocamos um satélite em órbita ao redor de",
	"This will be a day long remembered":                                 "Este será um dia muito lembrado",

	// Notes
	"Complete the following:": "Complete o seguinte:",

	// Common phrases
	"Because....":                   "Porque....",
	"Want to be sure":               "Queremos ter certeza",
	"isn't made out of dust":        "não é feito de poeira",
	"before we send a manned craft": "antes de enviarmos uma nave tripulada",
	"want to be get close-up pictures of a projected landing site for a future manned landing on": "queremos obter fotos próximas de um local de pouso projetado para um futuro pouso tripulado em",
	"moar pictures":  "mais imagens",
	"test":           "teste",
	"future landing": "pouso futuro",
}
