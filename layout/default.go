package layout

// Armored Core: Silent Line Portable. Addresses are in the emulated PSP address space.
const defaultConfig = `
default: slp-us
targets:
  - key: slp-us
    id: 6a1f4c2e-8d3b-4f5a-9c7e-2b1d0e3f4a5b
    title: Armored Core Silent Line Portable
    region: US
    majorVersion: 1
    minorVersion: 0
    pointerAddress: 0x09044C30
    baseDisplacement: 0x3AA4
    slotStride: 0x204
    maxOwned: 128
    countOffset: 0x200
    categories:
      - { name: HEADS, ordinal: 0, total: 21 }
      - { name: CORES, ordinal: 1, total: 12 }
      - { name: ARMS, ordinal: 2, total: 39 }
      - { name: LEGS, ordinal: 3, total: 61 }
      - { name: BOOSTER, ordinal: 4, total: 11 }
      - { name: FCS, ordinal: 5, total: 12 }
      - { name: GENERATOR, ordinal: 6, total: 9 }
      - { name: RADIATOR, ordinal: 7, total: 9 }
      - { name: INSIDE, ordinal: 8, total: 22 }
      - { name: EXTENSION, ordinal: 9, total: 28 }
      - { name: BACK_UNIT, ordinal: 10, total: 80 }
      - { name: ARM_UNIT_R, ordinal: 11, total: 82 }
      - { name: ARM_UNIT_L, ordinal: 12, total: 43 }
      - { name: OPTIONAL, ordinal: 13, total: 20 }
`
