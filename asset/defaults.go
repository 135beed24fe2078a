package asset

// DefaultConfigYAML is the starter configuration written by the init command
const DefaultConfigYAML = `# firework-quiz configuration
# Every key can be overridden with a QUIZ_ environment variable, e.g. QUIZ_GAME_TICK_RATE=30

env: local
debug: false
log_dir: logs

questions:
  # CSV (question,opA,opB,opC,opD,correct) or YAML
  path: assets/questions.csv

game:
  tick_rate: 60
  feedback_duration: 1.5s
  # 0 seeds from the clock
  seed: 0

audio:
  enabled: true
  volume: 0.5

display:
  title: 題庫測驗
  caption: ""
`

// SampleQuestionsCSV is the starter question bank written by the init command
const SampleQuestionsCSV = `question,opA,opB,opC,opD,correct
台灣最高的山是哪一座？,雪山,玉山,合歡山,阿里山,B
一年有幾個月？,10,11,12,13,C
水的化學式是？,H2O,CO2,O2,NaCl,A
光在真空中的速度約為每秒多少公里？,3萬,30萬,300萬,3000,B
太陽系中最大的行星是？,地球,土星,海王星,木星,D
「床前明月光」的作者是？,杜甫,李白,白居易,王維,B
1 公尺等於幾公分？,10,100,1000,10000,B
下列何者是哺乳類？,鯨魚,鯊魚,鱷魚,企鵝,A
二進位的 101 等於十進位的多少？,3,4,5,6,C
地球繞太陽一圈約需多久？,一天,一個月,一年,十年,C
三角形內角和是幾度？,90,180,270,360,B
下列何者是程式語言？,HTML,CSS,Go,JSON,C
`
